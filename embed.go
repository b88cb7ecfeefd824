package inkwell

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// copy.js (code block copy-to-clipboard behavior)
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
