package utils

import "strings"

// OnlyDigits remove tudo que não for dígito decimal (ex: "111.444.777-35" -> "11144477735").
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TrimString recorta espaços ao redor do valor.
func TrimString(s string) string {
	return strings.TrimSpace(s)
}
