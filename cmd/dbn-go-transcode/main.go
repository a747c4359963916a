// Copyright (c) 2025 Neomantra Corp

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/openmdp/dbn-go"
	dbn_file "github.com/openmdp/dbn-go/internal/file"
	"github.com/relvacode/iso8601"
	"github.com/spf13/cobra"
)

///////////////////////////////////////////////////////////////////////////////

var (
	toFormat   string
	prettyPx   bool
	prettyTs   bool
	mapSymbols bool
	outZstd    bool
	outFile    string

	patchStart string
	patchEnd   string
	patchLimit int64

	queryParquetPath string
)

func requireNoError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

///////////////////////////////////////////////////////////////////////////////

func main() {
	cobra.OnInitialize()

	rootCmd.AddCommand(transcodeCmd)
	transcodeCmd.Flags().StringVar(&toFormat, "to", "ndjson", "output format: ndjson, csv, or dbn")
	transcodeCmd.Flags().BoolVar(&prettyPx, "pretty-px", false, "render prices as decimal strings")
	transcodeCmd.Flags().BoolVar(&prettyTs, "pretty-ts", false, "render timestamps as RFC 3339")
	transcodeCmd.Flags().BoolVar(&mapSymbols, "map-symbols", false, "append a symbol column/field")
	transcodeCmd.Flags().BoolVar(&outZstd, "zstd", false, "zstd-compress dbn output")
	transcodeCmd.Flags().StringVarP(&outFile, "out", "o", "-", "output file, - for stdout")

	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&outFile, "out", "o", "-", "output file, - for stdout")
	mergeCmd.Flags().BoolVar(&outZstd, "zstd", false, "zstd-compress merged output")
	mergeCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(patchMetadataCmd)
	patchMetadataCmd.Flags().StringVar(&patchStart, "start", "", "new start time, ISO 8601")
	patchMetadataCmd.Flags().StringVar(&patchEnd, "end", "", "new end time, ISO 8601")
	patchMetadataCmd.Flags().Int64Var(&patchLimit, "limit", -1, "new record limit, -1 leaves unchanged")

	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVar(&queryParquetPath, "parquet", "", "cache the intermediate Parquet file at this path instead of a temp file")

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

///////////////////////////////////////////////////////////////////////////////

var rootCmd = &cobra.Command{
	Use:   "dbn-go-transcode",
	Short: "dbn-go-transcode re-encodes, merges, patches, and queries Databento DBN streams",
	Long:  "dbn-go-transcode re-encodes, merges, patches, and queries Databento DBN streams",
}

///////////////////////////////////////////////////////////////////////////////

var transcodeCmd = &cobra.Command{
	Use:   "transcode file",
	Short: "Re-encodes a DBN file to --to=ndjson|csv|dbn",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireNoError(runTranscode(args[0]))
	},
}

func runTranscode(sourceFile string) error {
	in, closer, err := dbn.MakeCompressedReader(sourceFile, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	w, wcloser, err := dbn.MakeCompressedWriter(outFile, false)
	if err != nil {
		return err
	}
	defer wcloser()
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	build := transcodeSinkBuilder(bw)
	t := dbn.NewTranscoder(build)

	buf := make([]byte, 64*1024)
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			t.Feed(buf[:n])
			for {
				state, perr := t.Poll()
				if perr != nil {
					return perr
				}
				if state != dbn.AsyncDispatched {
					break
				}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}
	return t.Flush()
}

func transcodeSinkBuilder(w io.Writer) dbn.SinkBuilder {
	return func(m *dbn.Metadata) (dbn.Visitor, error) {
		switch toFormat {
		case "csv":
			symbolMap := dbn.NewTsSymbolMap()
			if mapSymbols {
				if err := symbolMap.FillFromMetadata(m); err != nil {
					return nil, err
				}
			}
			return dbn.NewCsvEncoder(w, dbn.CsvOptions{
				PrettyPx: prettyPx, PrettyTs: prettyTs,
				MapSymbols: mapSymbols, SymbolMap: symbolMap,
			}), nil
		case "ndjson":
			symbolMap := dbn.NewTsSymbolMap()
			if mapSymbols {
				if err := symbolMap.FillFromMetadata(m); err != nil {
					return nil, err
				}
			}
			return dbn.NewNdjsonEncoder(w, dbn.NdjsonOptions{
				PrettyPx: prettyPx, PrettyTs: prettyTs,
				MapSymbols: mapSymbols, SymbolMap: symbolMap,
			}), nil
		case "dbn":
			var enc *dbn.Encoder
			var err error
			if outZstd {
				enc, err = dbn.NewZstdEncoder(w, dbn.EncodeFullStream)
			} else {
				enc = dbn.NewEncoder(w, dbn.EncodeFullStream)
			}
			if err != nil {
				return nil, err
			}
			if err := enc.WriteMetadata(m); err != nil {
				return nil, err
			}
			return dbn.NewEncoderVisitor(enc, int(m.SymbolCstrLen), m.VersionNum == dbn.HeaderVersion3), nil
		default:
			return nil, fmt.Errorf("unknown --to format %q", toFormat)
		}
	}
}

///////////////////////////////////////////////////////////////////////////////

var mergeCmd = &cobra.Command{
	Use:   "merge file...",
	Short: "Merges multiple DBN files in (index_ts, input_index) order into one DBN stream",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		requireNoError(runMerge(args))
	},
}

func runMerge(sourceFiles []string) error {
	readers := make([]io.Reader, len(sourceFiles))
	for i, f := range sourceFiles {
		r, closer, err := dbn.MakeCompressedReader(f, false)
		if err != nil {
			return err
		}
		defer closer.Close()
		readers[i] = r
	}

	md, err := dbn.NewMergeDecoder(context.Background(), readers)
	if err != nil {
		return err
	}

	w, wcloser, err := dbn.MakeCompressedWriter(outFile, false)
	if err != nil {
		return err
	}
	defer wcloser()
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	var enc *dbn.Encoder
	if outZstd {
		enc, err = dbn.NewZstdEncoder(bw, dbn.EncodeFullStream)
	} else {
		enc = dbn.NewEncoder(bw, dbn.EncodeFullStream)
	}
	if err != nil {
		return err
	}
	if err := enc.WriteMetadata(md.Metadata); err != nil {
		return err
	}
	visitor := dbn.NewEncoderVisitor(enc, int(md.Metadata.SymbolCstrLen), md.Metadata.VersionNum == dbn.HeaderVersion3)

	for {
		ok, err := md.Next(visitor)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	if closer, ok := visitor.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////

var patchMetadataCmd = &cobra.Command{
	Use:   "patch-metadata file",
	Short: "Rewrites a DBN file's start/end/limit metadata fields in place",
	Long:  "Rewrites a DBN file's start/end/limit metadata fields in place. The file must be uncompressed; zstd frames cannot be patched.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireNoError(runPatchMetadata(args[0]))
	},
}

func runPatchMetadata(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	var startPtr, endPtr, limitPtr *uint64
	if patchStart != "" {
		t, err := iso8601.ParseString(patchStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		v := uint64(t.UnixNano())
		startPtr = &v
	}
	if patchEnd != "" {
		t, err := iso8601.ParseString(patchEnd)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
		v := uint64(t.UnixNano())
		endPtr = &v
	}
	if patchLimit >= 0 {
		v := uint64(patchLimit)
		limitPtr = &v
	}
	return dbn.PatchMetadata(f, startPtr, endPtr, limitPtr)
}

///////////////////////////////////////////////////////////////////////////////

var queryCmd = &cobra.Command{
	Use:   "query file sql",
	Short: "Runs a SQL query over a DBN file via an in-memory DuckDB view named 'records'",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		requireNoError(runQuery(args[0], args[1]))
	},
}

func runQuery(sourceFile, sql string) error {
	parquetPath := queryParquetPath
	if parquetPath == "" {
		tmp, err := os.CreateTemp("", "dbn-go-query-*.parquet")
		if err != nil {
			return err
		}
		parquetPath = tmp.Name()
		tmp.Close()
		defer os.Remove(parquetPath)
	}
	if err := dbn_file.WriteDbnFileAsParquet(sourceFile, false, parquetPath); err != nil {
		return err
	}

	rows, err := dbn_file.QueryParquet(parquetPath, sql)
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Println(row)
	}
	return nil
}
