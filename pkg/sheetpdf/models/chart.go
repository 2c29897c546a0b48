package models

// ChartSeries is the source ranges of one chart series as stored in the
// workbook.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// CategoryRange is the range reference for the category axis values.
	CategoryRange string `json:"category_range,omitempty"`
	// ValueRange is the range reference for the series values.
	ValueRange string `json:"value_range,omitempty"`
}

// ChartData is a single series resolved to concrete values, ready to be
// drawn as a bar chart.
type ChartData struct {
	// Title is the chart title, falling back to the series name.
	Title string `json:"title,omitempty"`
	// Labels holds one category label per value.
	Labels []string `json:"labels"`
	// Values holds the numeric series values.
	Values []float64 `json:"values"`
}

// Max returns the largest value, or 0 for an empty chart.
func (c ChartData) Max() float64 {
	var m float64
	for _, v := range c.Values {
		if v > m {
			m = v
		}
	}
	return m
}
