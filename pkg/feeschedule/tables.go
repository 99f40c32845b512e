package feeschedule

// TransferDuty is the canonical transfer duty schedule, keyed on property
// price: 1% to 100,000, then 2%, 3%, and 4% on the excess at the 500,000
// and 1,000,000 breakpoints.
var TransferDuty = Schedule{
	Name: "transfer-duty",
	Tiers: []Tier{
		{UpperBound: 100000, BaseFee: 0, MarginalRatePercent: 1.0, MarginalBase: 0},
		{UpperBound: 500000, BaseFee: 1000, MarginalRatePercent: 2.0, MarginalBase: 100000},
		{UpperBound: 1000000, BaseFee: 9000, MarginalRatePercent: 3.0, MarginalBase: 500000},
		{UpperBound: Unbounded, BaseFee: 24000, MarginalRatePercent: 4.0, MarginalBase: 1000000},
	},
}

// LegalFees is the canonical legal fee schedule, keyed on property price:
// 1.25% to 500,000 with a 500.00 floor, 1% on the excess to 1,000,000, and
// 0.5% on the excess above that.
var LegalFees = Schedule{
	Name:       "legal-fees",
	MinimumFee: 500,
	Tiers: []Tier{
		{UpperBound: 500000, BaseFee: 0, MarginalRatePercent: 1.25, MarginalBase: 0},
		{UpperBound: 1000000, BaseFee: 6250, MarginalRatePercent: 1.0, MarginalBase: 500000},
		{UpperBound: Unbounded, BaseFee: 11250, MarginalRatePercent: 0.5, MarginalBase: 1000000},
	},
}
