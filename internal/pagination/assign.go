package pagination

import "fmt"

// PageLabel pairs a page identifier with its generated label.
type PageLabel struct {
	Order int    `json:"order" yaml:"order"`
	Page  string `json:"page" yaml:"page"`
	Label string `json:"label" yaml:"label"`
}

// CheckFrom reports ErrPageOutOfRange unless from is a valid first labelled
// page for a list of n pages.
func CheckFrom(n, from int) error {
	if from < 0 || (from > 0 && from >= n) {
		return fmt.Errorf("%w: %d of %d pages", ErrPageOutOfRange, from, n)
	}
	return nil
}

// Assign labels pages[from:] with successive labels from seq. Pages before
// from keep an empty label and do not consume a label.
func Assign(seq *Sequence, pages []string, from int) ([]PageLabel, error) {
	if err := CheckFrom(len(pages), from); err != nil {
		return nil, err
	}

	out := make([]PageLabel, len(pages))
	for i, page := range pages {
		out[i] = PageLabel{Order: i + 1, Page: page}
		if i >= from {
			out[i].Label = seq.Next()
		}
	}
	return out, nil
}
