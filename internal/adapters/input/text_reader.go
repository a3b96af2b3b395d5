package input

import (
	"bufio"
	"delivery-estimate-service/internal/services"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

var ErrMalformedInput = errors.New("malformed input")

// tokenReader walks whitespace-separated tokens and remembers their position.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) next(field string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", field, err)
		}
		return "", fmt.Errorf("%w: token #%d (%s): unexpected end of input", ErrMalformedInput, t.pos+1, field)
	}
	t.pos++
	return t.sc.Text(), nil
}

func (t *tokenReader) number(field string) (float64, error) {
	tok, err := t.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: token #%d (%s): %q is not a number", ErrMalformedInput, t.pos, field, tok)
	}
	return v, nil
}

func (t *tokenReader) integer(field string) (int, error) {
	tok, err := t.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: token #%d (%s): %q is not an integer", ErrMalformedInput, t.pos, field, tok)
	}
	return v, nil
}

// ReadRequest parses the text input format:
//
//	baseCost packageCount
//	id weight distance offerCode    (packageCount times)
//	vehicleCount maxSpeed maxLoad
//
// Line breaks are not significant; only token order is.
func ReadRequest(r io.Reader) (services.EstimateDeliveriesRequest, error) {
	var req services.EstimateDeliveriesRequest
	t := newTokenReader(r)

	var err error
	if req.BaseCost, err = t.number("base cost"); err != nil {
		return req, err
	}

	n, err := t.integer("package count")
	if err != nil {
		return req, err
	}
	if n < 0 {
		return req, fmt.Errorf("%w: package count must not be negative, got %d", ErrMalformedInput, n)
	}

	req.Packages = make([]services.PackageInput, 0, n)
	for i := 1; i <= n; i++ {
		var p services.PackageInput
		if p.ID, err = t.next(fmt.Sprintf("package %d id", i)); err != nil {
			return req, err
		}
		if p.Weight, err = t.number(fmt.Sprintf("package %d weight", i)); err != nil {
			return req, err
		}
		if p.Distance, err = t.number(fmt.Sprintf("package %d distance", i)); err != nil {
			return req, err
		}
		if p.OfferCode, err = t.next(fmt.Sprintf("package %d offer code", i)); err != nil {
			return req, err
		}
		req.Packages = append(req.Packages, p)
	}

	if req.VehicleCount, err = t.integer("vehicle count"); err != nil {
		return req, err
	}
	if req.MaxSpeed, err = t.number("max speed"); err != nil {
		return req, err
	}
	if req.MaxLoad, err = t.number("max load"); err != nil {
		return req, err
	}

	return req, nil
}
