// Copyright (c) 2025 Neomantra Corp

package file

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/openmdp/dbn-go"
)

func WriteDbnFileAsJson(sourceFile string, forceZstdInput bool, writer io.Writer) error {
	dbnFile, dbnCloser, _ := dbn.MakeCompressedReader(sourceFile, forceZstdInput)
	defer dbnCloser.Close()

	dbnScanner := dbn.NewDbnScanner(dbnFile)
	_, err := dbnScanner.Metadata()
	if err != nil {
		return fmt.Errorf("scanner failed to read metadata: %w", err)
	}

	visitor := dbn.NewNdjsonEncoder(writer, dbn.NdjsonOptions{})
	for dbnScanner.Next() {
		if err := dbnScanner.Visit(visitor); err != nil {
			return fmt.Errorf("json print failed: %w", err)
		}
	}
	if err := dbnScanner.Error(); err != nil && err != io.EOF {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

////////////////////////////////////////////////////////////////////////////////

// WriteAsJson writes a value marshalled as JSON to the writer, returning any error.
func WriteAsJson[T any](val *T, writer io.Writer) error {
	jstr, err := json.Marshal(val)
	if err != nil {
		return err
	}
	_, err = writer.Write(jstr)
	if err != nil {
		return err
	}
	_, err = writer.Write([]byte{'\n'})
	return err
}
