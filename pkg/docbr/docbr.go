// Package docbr valida documentos fiscais brasileiros (CPF e CNPJ)
// pelo algoritmo oficial de dígitos verificadores.
package docbr

import (
	"github.com/lugorito/pedidos-http/pkg/utils"
)

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidCPF verifica os dois dígitos verificadores de um CPF.
// Aceita o número com ou sem máscara; sequências de dígitos
// repetidos (ex: 000.000.000-00) passam na conta mas são inválidas.
func ValidCPF(doc string) bool {
	digits := utils.OnlyDigits(doc)
	if len(digits) != 11 || allSameDigit(digits) {
		return false
	}

	d1 := cpfCheckDigit(digits, 9)
	d2 := cpfCheckDigit(digits, 10)

	return d1 == int(digits[9]-'0') && d2 == int(digits[10]-'0')
}

// ValidCNPJ verifica os dois dígitos verificadores de um CNPJ.
func ValidCNPJ(doc string) bool {
	digits := utils.OnlyDigits(doc)
	if len(digits) != 14 || allSameDigit(digits) {
		return false
	}

	d1 := cnpjCheckDigit(digits[:12], cnpjWeightsFirst)
	// o segundo dígito é calculado sobre a base mais o primeiro dígito recém-calculado
	d2 := cnpjCheckDigit(digits[:12]+string(rune('0'+d1)), cnpjWeightsSecond)

	return d1 == int(digits[12]-'0') && d2 == int(digits[13]-'0')
}

// cpfCheckDigit calcula o dígito sobre os n primeiros dígitos,
// com pesos decrescentes de n+1 até 2.
func cpfCheckDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	d := sum * 10 % 11
	if d == 10 {
		d = 0
	}
	return d
}

func cnpjCheckDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
