//go:build embed

package vocab

import _ "embed"

// Building with -tags embed bundles vocabulary files directly into the
// binary instead of reading them from disk at runtime. To use it, place
// the four distinct *.tiktoken files the registry's six encodings use
// (r50k_base, p50k_base, cl100k_base, o200k_base; see registry package)
// in internal/vocab/ alongside this file and uncomment the embed
// directives below, mirroring the teacher's embed/non-embed data split
// (agentstation-tokenizer llama3/data_embed.go, data_loader.go).
//
// No vocabulary data ships in this repository: these must be supplied
// by whoever builds with -tags embed.
//
// //go:embed r50k_base.tiktoken
// var embeddedR50KBase string
