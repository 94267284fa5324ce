package domain

type Conversion struct {
	From            string
	To              string
	Amount          float64
	ConversionRate  float64
	ConvertedAmount float64
}
