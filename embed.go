package scholarpage

import "embed"

// EmbeddedAssets contains assets shipped with the binary: the fallback
// favicon served when the static directory has none.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func defaultFavicon() ([]byte, error) {
	return EmbeddedAssets.ReadFile("embedded/favicon.svg")
}
