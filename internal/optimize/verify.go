package optimize

import "github.com/josephgoksu/promptwing/internal/locale"

// VerificationPrompt returns the reviewer prompt used to check an
// implementation against the plan it was built from.
func VerificationPrompt(cat *locale.Catalog) string {
	return cat.Verification
}
