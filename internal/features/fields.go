package features

import "winequality/internal/data"

// Field describes one prediction input for the dashboard form.
type Field struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Step  float64 `json:"step"`
}

var fields = [data.NumFeatures]Field{
	{Name: "fixed_acidity", Label: "Fixed Acidity", Step: 0.1},
	{Name: "volatile_acidity", Label: "Volatile Acidity", Step: 0.01},
	{Name: "citric_acid", Label: "Citric Acid", Step: 0.01},
	{Name: "residual_sugar", Label: "Residual Sugar", Step: 0.1},
	{Name: "chlorides", Label: "Chlorides", Step: 0.001},
	{Name: "free_sulfur_dioxide", Label: "Free Sulfur Dioxide", Step: 1},
	{Name: "total_sulfur_dioxide", Label: "Total Sulfur Dioxide", Step: 1},
	{Name: "density", Label: "Density", Step: 0.0001},
	{Name: "pH", Label: "pH", Step: 0.01},
	{Name: "sulphates", Label: "Sulphates", Step: 0.01},
	{Name: "alcohol", Label: "Alcohol", Step: 0.1},
}

// Fields returns the input form configuration in feature order.
func Fields() []Field {
	return append([]Field(nil), fields[:]...)
}
