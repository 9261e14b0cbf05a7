package submission

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// InstallmentFee is added to half of the original installment.
const InstallmentFee = 7.5

// ParseNumberPrefix parses the longest leading decimal literal of s after
// skipping leading whitespace, the way browsers parse numeric text typed into
// a form: "150.5abc" is 150.5, "Infinity" is +Inf, and text without a leading
// number is NaN.
func ParseNumberPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	intDigits := leadingDigits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = leadingDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return math.NaN()
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expDigits := leadingDigits(s[j:]); expDigits > 0 {
			i = j + expDigits
		}
	}

	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return value
		}
		return math.NaN()
	}
	return value
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// ParseAmount reads an installment amount typed with either "," or "." as
// the decimal separator. Only the first comma is substituted. Unparseable,
// zero and non-finite amounts become 0.
func ParseAmount(raw string) float64 {
	value := ParseNumberPrefix(strings.Replace(raw, ",", ".", 1))
	if math.IsNaN(value) || math.IsInf(value, 0) || value == 0 {
		return 0
	}
	return value
}

// DerivedInstallment computes the renegotiated installment for an amount.
func DerivedInstallment(amount float64) float64 {
	return amount/2 + InstallmentFee
}

// FormatFixed2 renders v with exactly two decimals, rounding exact halves
// away from zero on the binary value of v. NaN and infinities render as
// "NaN", "Infinity" and "-Infinity"; magnitudes of 1e21 and above fall back
// to exponent notation.
func FormatFixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= 1e21:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	scaled := new(big.Float).SetPrec(256).SetFloat64(v)
	scaled.Mul(scaled, big.NewFloat(100))
	scaled.Add(scaled, big.NewFloat(0.5))
	cents, _ := scaled.Int(nil)

	digits := cents.String()
	for len(digits) < 3 {
		digits = "0" + digits
	}
	return sign + digits[:len(digits)-2] + "." + digits[len(digits)-2:]
}
