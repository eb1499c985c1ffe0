package arbnumbra

import "fmt"

// MustGenerate is like [Generate] but panics if the case cannot be
// generated. It simplifies safe initialization of variables holding known
// valid cases, such as the special-value catalogs.
func MustGenerate(num string, precision, radix, base int) Case {
	c, err := Generate(num, precision, radix, base)
	if err != nil {
		panic(fmt.Sprintf("MustGenerate(%q, %v) failed: %v", num, precision, err))
	}
	return c
}
