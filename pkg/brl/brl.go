// Package brl reúne utilitários de localização pt-BR usados nos formulários e
// no PDF: parsing de preço com vírgula decimal e prefixo "R$", formatação de
// moeda e formatação de telefone brasileiro.
package brl

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice interpreta um preço digitado na notação da oficina.
// Aceita "199,90", "R$ 199,90", "1.234,56" e também "199.90" (ponto decimal).
// Se a string contém vírgula, pontos são tratados como separador de milhar;
// sem vírgula, o ponto é o separador decimal.
func ParsePrice(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("brl: preço vazio")
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("brl: preço inválido %q", input)
	}
	return d, nil
}

// FormatMoney formata um valor como moeda brasileira: "R$ 1.234,56".
func FormatMoney(v decimal.Decimal) string {
	s := v.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	intPart = groupThousands(intPart)

	out := "R$ " + intPart + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// groupThousands insere pontos de milhar em uma string numérica.
// Ex: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// FormatPhone formata um telefone brasileiro conforme digitado: "(11) 99999-9999".
// Mantém só dígitos (máximo 11) e aplica a máscara progressivamente, igual ao
// campo do formulário de clientes.
func FormatPhone(raw string) string {
	var digits []byte
	for i := 0; i < len(raw) && len(digits) < 11; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	d := string(digits)
	if len(d) <= 2 {
		return d
	}
	ddd := d[:2]
	rest := d[2:]

	switch {
	case len(rest) <= 4:
		return fmt.Sprintf("(%s) %s", ddd, rest)
	case len(rest) <= 8:
		return fmt.Sprintf("(%s) %s-%s", ddd, rest[:4], rest[4:])
	default:
		// 9 dígitos (celular)
		return fmt.Sprintf("(%s) %s-%s", ddd, rest[:5], rest[5:9])
	}
}
