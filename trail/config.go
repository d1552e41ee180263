package trail

import (
	"errors"
	"fmt"

	"gopkg.in/gcfg.v1"
)

var (
	// ErrBadParam indicates an out-of-range value in a parameter file.
	ErrBadParam = errors.New("parameter out of range")
)

// On-disk parameter layout, gcfg INI style:
//
//	[trail]
//	beats-per-cycle = 4
//	bpm-floor       = 40
//	spacing         = 0.015
//	base-size       = 6.0
//	size-decay      = 0.4
//
// Every key is optional; missing keys fall back to DefaultParams.
type paramsFile struct {
	Trail Params
}

// CheckInit validates params and fills zero fields with their defaults.
func (params *Params) CheckInit() error {
	defaults := DefaultParams()
	if params.BeatsPerCycle == 0 {
		params.BeatsPerCycle = defaults.BeatsPerCycle
	}
	if params.BPMFloor == 0 {
		params.BPMFloor = defaults.BPMFloor
	}
	if params.Spacing == 0 {
		params.Spacing = defaults.Spacing
	}
	if params.BaseSize == 0 {
		params.BaseSize = defaults.BaseSize
	}
	if params.SizeDecay == 0 {
		params.SizeDecay = defaults.SizeDecay
	}
	if params.BeatsPerCycle < 0 {
		return fmt.Errorf("%w: beats-per-cycle = %g", ErrBadParam, params.BeatsPerCycle)
	}
	if params.BPMFloor < 0 {
		return fmt.Errorf("%w: bpm-floor = %g", ErrBadParam, params.BPMFloor)
	}
	if params.Spacing < 0 {
		return fmt.Errorf("%w: spacing = %g", ErrBadParam, params.Spacing)
	}
	if params.BaseSize < 0 {
		return fmt.Errorf("%w: base-size = %g", ErrBadParam, params.BaseSize)
	}
	if params.SizeDecay < 0 {
		return fmt.Errorf("%w: size-decay = %g", ErrBadParam, params.SizeDecay)
	}
	return nil
}

// ReadParamsFile reads trail parameters from a gcfg INI file.
func ReadParamsFile(path string) (Params, error) {
	var pf paramsFile
	if err := gcfg.ReadFileInto(&pf, path); err != nil {
		return Params{}, err
	}
	return checkedParams(pf)
}

// ReadParamsString reads trail parameters from INI text, mainly useful
// for embedding and tests.
func ReadParamsString(config string) (Params, error) {
	var pf paramsFile
	if err := gcfg.ReadStringInto(&pf, config); err != nil {
		return Params{}, err
	}
	return checkedParams(pf)
}

func checkedParams(pf paramsFile) (Params, error) {
	params := pf.Trail
	if err := params.CheckInit(); err != nil {
		return Params{}, err
	}
	tracer().Debugf("trail params = %+v", params)
	return params, nil
}
