package interest

import "math"

// Compound returns the compound interest earned on principal:
//
//	principal · (1 + r/frequency)^(frequency·time) − principal,  r = ratePercent/100
//
// Example: Compound(15000, 5.5, 2, 4) ≈ 1731.63.
func Compound(principal, ratePercent, time, frequency float64) (float64, error) {
	amount, err := Amount(principal, ratePercent, time, frequency)
	if err != nil {
		return 0, err
	}

	return amount - principal, nil
}

// Amount returns the final balance principal · (1 + r/frequency)^(frequency·time).
func Amount(principal, ratePercent, time, frequency float64) (float64, error) {
	if err := validate(principal, ratePercent, time, frequency); err != nil {
		return 0, err
	}

	return balance(principal, ratePercent/100, frequency, periods(frequency, time)), nil
}

// Schedule returns the balance after every compounding step up to time.
//
// When frequency·time is not a whole number, a last partial step is added
// so that the final Balance always equals Amount. time == 0 yields an empty
// schedule.
func Schedule(principal, ratePercent, time, frequency float64) ([]Period, error) {
	if err := validate(principal, ratePercent, time, frequency); err != nil {
		return nil, err
	}

	steps := periods(frequency, time)
	if steps > MaxSchedulePeriods {
		return nil, ErrTooManyPeriods
	}

	rate := ratePercent / 100
	whole := int(math.Floor(steps))
	out := make([]Period, 0, whole+1)
	for k := 1; k <= whole; k++ {
		b := balance(principal, rate, frequency, float64(k))
		elapsed := float64(k) / frequency
		if float64(k) == steps {
			elapsed = time
		}
		out = append(out, Period{
			Index:    k,
			Elapsed:  elapsed,
			Balance:  b,
			Interest: b - principal,
		})
	}

	if steps > float64(whole) {
		b := balance(principal, rate, frequency, steps)
		out = append(out, Period{
			Index:    whole + 1,
			Elapsed:  time,
			Balance:  b,
			Interest: b - principal,
		})
	}

	return out, nil
}

// wholeTolerance is the relative distance from an integer below which a
// period count is treated as whole.
const wholeTolerance = 1e-9

// periods returns frequency·time, snapped to the nearest integer when the
// product only misses it by floating-point noise (100 × 0.07 is
// 7.000000000000001).
func periods(frequency, time float64) float64 {
	steps := frequency * time
	if r := math.Round(steps); math.Abs(steps-r) <= wholeTolerance*math.Max(1, r) {
		return r
	}

	return steps
}

// balance evaluates P · (1 + rate/n)^exp.
func balance(principal, rate, n, exp float64) float64 {
	return principal * math.Pow(1+rate/n, exp)
}

// validate applies the argument checks shared by every operation.
func validate(principal, ratePercent, time, frequency float64) error {
	for _, v := range [...]float64{principal, ratePercent, time, frequency} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	if frequency <= 0 {
		return ErrBadFrequency
	}
	if time < 0 {
		return ErrNegativeTime
	}

	return nil
}
