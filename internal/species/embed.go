package species

import _ "embed"

// Species growth parameters for the supported catalog.
// The file preserves the source metadata alongside each profile.

//go:embed data/species.json
var rawSpeciesJSON []byte
