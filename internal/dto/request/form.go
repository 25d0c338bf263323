package request

import (
	"net/url"
	"strings"
)

func formValue(form url.Values, key string) string {
	return strings.TrimSpace(form.Get(key))
}

func formList(form url.Values, key string) []string {
	var out []string
	for _, v := range form[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
