package pipeline

// Category10 is the default ten-color palette assigned to series that do
// not carry a color.
var Category10 = [...]string{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

// ColorAt returns the palette color for the i-th series, cycling after ten.
func ColorAt(i int) string {
	if i < 0 {
		i = -i
	}
	return Category10[i%len(Category10)]
}
