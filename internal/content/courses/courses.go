// Package courses holds the compiled-in course catalogue.
package courses

import "learnhub/internal/content"

// Builtin lists every compiled-in course provider. Add new courses here.
func Builtin() content.Static {
	return content.Static{
		foundations{},
		applied{},
		coding{},
		executive{},
	}
}

func list(items ...string) string {
	out := `<ul class="list-disc ml-6">`
	for _, it := range items {
		out += "<li>" + it + "</li>"
	}
	return out + "</ul>"
}

func para(text string) string {
	return "<p>" + text + "</p>"
}

func options(pairs ...string) content.Options {
	opts := make(content.Options, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		opts = append(opts, content.Option{Key: pairs[i], Label: pairs[i+1]})
	}
	return opts
}
