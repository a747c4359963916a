package dbn_test

import (
	"github.com/openmdp/dbn-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("VersionUpgrade", func() {
	Context("ApplyUpgradePolicy", func() {
		It("keeps the origin version under AsIs regardless of the stream version", func() {
			Expect(dbn.ApplyUpgradePolicy(dbn.AsIs, dbn.HeaderVersion1, dbn.HeaderVersion2)).To(Equal(uint8(dbn.HeaderVersion1)))
		})
		It("upgrades to the stream version under Upgrade when it's newer", func() {
			Expect(dbn.ApplyUpgradePolicy(dbn.Upgrade, dbn.HeaderVersion1, dbn.HeaderVersion2)).To(Equal(uint8(dbn.HeaderVersion2)))
		})
		It("keeps the origin version under Upgrade when the stream isn't newer", func() {
			Expect(dbn.ApplyUpgradePolicy(dbn.Upgrade, dbn.HeaderVersion2, dbn.HeaderVersion2)).To(Equal(uint8(dbn.HeaderVersion2)))
			Expect(dbn.ApplyUpgradePolicy(dbn.Upgrade, dbn.HeaderVersion2, dbn.HeaderVersion1)).To(Equal(uint8(dbn.HeaderVersion2)))
		})
	})

	Context("UpgradeInstrumentDef", func() {
		It("leaves v1/v2 target fields untouched", func() {
			r := &dbn.InstrumentDefMsg{
				TradingReferencePrice:   100,
				TradingReferenceDate:    20201,
				SettlPriceType:          1,
				MdSecurityTradingStatus: 2,
			}
			dbn.UpgradeInstrumentDef(r, dbn.HeaderVersion2)
			Expect(r.TradingReferencePrice).To(Equal(int64(100)))
			Expect(r.TradingReferenceDate).To(Equal(uint16(20201)))
			Expect(r.SettlPriceType).To(Equal(uint8(1)))
			Expect(r.MdSecurityTradingStatus).To(Equal(uint8(2)))
		})

		It("zeroes the fields dropped going to v3", func() {
			r := &dbn.InstrumentDefMsg{
				TradingReferencePrice:   100,
				TradingReferenceDate:    20201,
				SettlPriceType:          1,
				MdSecurityTradingStatus: 2,
			}
			dbn.UpgradeInstrumentDef(r, dbn.HeaderVersion3)
			Expect(r.TradingReferencePrice).To(Equal(int64(0)))
			Expect(r.TradingReferenceDate).To(Equal(uint16(0)))
			Expect(r.SettlPriceType).To(Equal(uint8(0)))
			Expect(r.MdSecurityTradingStatus).To(Equal(uint8(0)))
		})
	})

	Context("UpgradeError", func() {
		It("fills in the implicit v1 code/is_last values when upgrading v1 to v2", func() {
			r := &dbn.ErrorMsg{}
			dbn.UpgradeError(r, dbn.HeaderVersion1, dbn.HeaderVersion2)
			Expect(r.Code).To(Equal(uint8(0xFF)))
			Expect(r.IsLast).To(Equal(uint8(1)))
		})

		It("leaves the record alone when the origin is already v2+", func() {
			r := &dbn.ErrorMsg{Code: 3, IsLast: 0}
			dbn.UpgradeError(r, dbn.HeaderVersion2, dbn.HeaderVersion2)
			Expect(r.Code).To(Equal(uint8(3)))
			Expect(r.IsLast).To(Equal(uint8(0)))
		})

		It("leaves the record alone when the target stays at v1", func() {
			r := &dbn.ErrorMsg{Code: 3, IsLast: 0}
			dbn.UpgradeError(r, dbn.HeaderVersion1, dbn.HeaderVersion1)
			Expect(r.Code).To(Equal(uint8(3)))
			Expect(r.IsLast).To(Equal(uint8(0)))
		})
	})
})
