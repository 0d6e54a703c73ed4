package validate

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

// Prepared rules for the common case of widgets handing over string
// input. Each rule is a conversion validator so that its failure
// message travels with the result.

func asString(value any) (string, *ConversionError) {
	s, ok := value.(string)
	if !ok {
		return "", Invalid("must be text")
	}
	return s, nil
}

// NonEmpty fails on the empty string.
func NonEmpty() Validator {
	return Conversion(func(value any) (any, error) {
		s, cerr := asString(value)
		if cerr != nil {
			return nil, cerr
		}
		if s == "" {
			return nil, Invalid("must not be empty")
		}
		return s, nil
	})
}

// Length bounds the rune count of the input. A max of zero means
// unbounded above.
func Length(min, max int) Validator {
	return Conversion(func(value any) (any, error) {
		s, cerr := asString(value)
		if cerr != nil {
			return nil, cerr
		}
		n := utf8.RuneCountInString(s)
		if n < min {
			return nil, Invalid("must be at least %d characters", min)
		}
		if max > 0 && n > max {
			return nil, Invalid("must be at most %d characters", max)
		}
		return s, nil
	})
}

// Match requires the input to match re. msg is the failure message
// shown to the user.
func Match(re *regexp.Regexp, msg string) Validator {
	return Conversion(func(value any) (any, error) {
		s, cerr := asString(value)
		if cerr != nil {
			return nil, cerr
		}
		if !re.MatchString(s) {
			return nil, &ConversionError{Message: msg}
		}
		return s, nil
	})
}

// OneOf requires the input to equal one of the given choices.
func OneOf(choices ...string) Validator {
	return Conversion(func(value any) (any, error) {
		s, cerr := asString(value)
		if cerr != nil {
			return nil, cerr
		}
		for _, c := range choices {
			if s == c {
				return s, nil
			}
		}
		return nil, Invalid("must be one of the listed choices")
	})
}

// Int converts the input to an int.
func Int() Validator {
	return Conversion(func(value any) (any, error) {
		s, cerr := asString(value)
		if cerr != nil {
			return nil, cerr
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, &ConversionError{Message: "must be of type int", Err: err}
		}
		return n, nil
	})
}

// IntRange converts the input to an int within [min, max].
func IntRange(min, max int) Validator {
	return Conversion(func(value any) (any, error) {
		s, cerr := asString(value)
		if cerr != nil {
			return nil, cerr
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, &ConversionError{Message: "must be of type int", Err: err}
		}
		if n < min || n > max {
			return nil, Invalid("must be between %d and %d", min, max)
		}
		return n, nil
	})
}

// Float converts the input to a float64.
func Float() Validator {
	return Conversion(func(value any) (any, error) {
		s, cerr := asString(value)
		if cerr != nil {
			return nil, cerr
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &ConversionError{Message: "must be of type float", Err: err}
		}
		return f, nil
	})
}
