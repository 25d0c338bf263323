package request

import "net/url"

// SearchTermFromForm reads the trimmed search_term field.
func SearchTermFromForm(form url.Values) string {
	return formValue(form, "search_term")
}
