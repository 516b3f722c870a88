package asm

import (
	"errors"
)

// Validate checks a layout.
//
// The checks run in order: referenced names exist, declared names are
// unique, relative branches are in range, the layout is stable, indirect
// indexed operands are in zero page, and everything fits in memory. Every
// violation of every check is reported, in check order and then layout
// order, joined into a single error. A missing name is reported once.
func Validate(layout *Layout) (err error) {
	var errs []error

	errs = append(errs, validateNamesExist(layout)...)
	errs = append(errs, validateNamesUnique(layout.Application)...)
	errs = append(errs, validateBranchRange(layout)...)
	errs = append(errs, validateLayoutStable(layout)...)
	errs = append(errs, validateZeroPageOperands(layout)...)
	errs = append(errs, validateMemoryRange(layout)...)

	return errors.Join(errs...)
}

func validateNamesExist(layout *Layout) (errs []error) {
	reported := map[string]bool{}

	for ins := range layout.Application.All() {
		ref, ok := Reference(ins.AddressMode())
		if !ok {
			continue
		}
		_, ok = layout.Book.Lookup(ref.Name)
		if ok || reported[ref.Name] {
			continue
		}
		reported[ref.Name] = true
		errs = append(errs, ErrAddressNameUnknown(ref.Name))
	}

	return
}

// validateNamesUnique checks the flat namespace of defines and labels.
func validateNamesUnique(app *Application) (errs []error) {
	declared := map[string]int{}

	declare := func(name string) {
		declared[name]++
		if declared[name] == 2 {
			errs = append(errs, ErrAddressNameDuplicate(name))
		}
	}

	for _, define := range app.Defines {
		declare(define.Name)
	}

	for label := range app.Labels() {
		declare(label)
	}

	return
}

func validateBranchRange(layout *Layout) (errs []error) {
	for ins, place := range layout.All() {
		rel, ok := ins.AddressMode().(Relative)
		if !ok {
			continue
		}
		target, err := layout.Book.Address(rel.Ref)
		if err != nil {
			// Reported by validateNamesExist or validateMemoryRange
			continue
		}
		next := Address(int(place.Address) + place.Size)
		disp, ok := Displacement(next, target)
		if !ok {
			errs = append(errs, &ErrBranchOutOfRange{
				Name:         rel.Ref.String(),
				Address:      place.Address,
				Target:       target,
				Displacement: disp,
			})
		}
	}

	return
}

// validateLayoutStable rejects instructions sized in their long form during
// layout that would encode in their zero page form with the final book.
func validateLayoutStable(layout *Layout) (errs []error) {
	for ins, place := range layout.All() {
		enc, err := Select(ins, layout.Book)
		if err != nil {
			// Defects are reported by the generators.
			continue
		}
		if enc.Size == place.Size {
			continue
		}
		ref, _ := Reference(ins.AddressMode())
		errs = append(errs, &ErrLayoutUnstable{
			Name:    ref.String(),
			Address: place.Address,
			Size:    place.Size,
			Want:    enc.Size,
		})
	}

	return
}

// validateZeroPageOperands rejects (zp,x) and (zp),y operands outside of
// zero page.
func validateZeroPageOperands(layout *Layout) (errs []error) {
	for ins := range layout.Application.All() {
		var ref AddressReference
		switch mode := ins.AddressMode().(type) {
		case IndexedIndirect:
			ref = mode.Ref
		case IndirectIndexed:
			ref = mode.Ref
		default:
			continue
		}
		addr, err := layout.Book.Address(ref)
		if err != nil {
			continue
		}
		if !addr.IsZeroPage() {
			errs = append(errs, &ErrZeroPageRequired{Name: ref.String(), Address: addr})
		}
	}

	return
}

// validateMemoryRange rejects references whose offset leaves memory, and
// layouts that run past the last address.
func validateMemoryRange(layout *Layout) (errs []error) {
	for ins := range layout.Application.All() {
		ref, ok := Reference(ins.AddressMode())
		if !ok {
			continue
		}
		_, err := layout.Book.Address(ref)
		var out_of_range *ErrAddressOutOfRange
		if errors.As(err, &out_of_range) {
			errs = append(errs, out_of_range)
		}
	}

	if layout.Overflow() {
		errs = append(errs, &ErrLayoutOverflow{End: layout.end})
	}

	return
}
