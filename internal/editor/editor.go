// Package editor edits a stored asset field by field. Input is collected into
// a working copy, validated as a whole, and only then written back.
package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"assettracker/internal/logger"
	"assettracker/pkg/assettypes"
)

// Prompts and messages.
const (
	msgEnterID      = "Enter the id of the asset you wish to modify."
	msgInvalidID    = "Please enter a valid number."
	msgNotFound     = "The provided id does not exist in the system."
	msgFieldPrompt  = "Enter a new '%s' or press return to keep the existing value."
	msgInvalidText  = "Please enter a valid string."
	msgInvalidNum   = "Please enter a valid number."
	msgInvalidDate  = "Please enter a valid Date."
	msgAborted      = "Aborted."
	msgSaved        = "Changes saved."
	msgNegPrice     = "Error: The price must not be negative."
	msgExpiryBefore = "Error: Expiry date cannot come before purchase date."
	msgFuture       = "Error: The specified purchase date is in the future."
	msgNoOffice     = "Error: An office with the specified id does not exist: %d."
)

// errAborted reports that input ended while collecting a field.
var errAborted = errors.New("input aborted")

// Editor runs the interactive update workflow.
type Editor struct {
	out     assettypes.OutputSink
	in      assettypes.InputSource
	assets  assettypes.AssetRepository
	offices assettypes.OfficeRepository
	now     func() time.Time
	logger  *log.Logger

	fieldsFor func(assettypes.Kind) ([]assettypes.FieldDescriptor, error)
}

// New creates an Editor. A nil clock means time.Now.
func New(out assettypes.OutputSink, in assettypes.InputSource, assets assettypes.AssetRepository, offices assettypes.OfficeRepository, now func() time.Time) *Editor {
	if now == nil {
		now = time.Now
	}
	return &Editor{
		out:       out,
		in:        in,
		assets:    assets,
		offices:   offices,
		now:       now,
		logger:    logger.NewStyledLogger("Editor"),
		fieldsFor: assettypes.FieldsFor,
	}
}

// Run asks for an asset id and edits that asset.
func (e *Editor) Run() bool {
	id, err := ReadID(e.out, e.in, msgEnterID)
	if err != nil {
		e.out.PutMessage(msgAborted, assettypes.Neutral, true)
		return false
	}
	return e.Edit(id)
}

// ReadID prompts until the user enters an integer.
func ReadID(out assettypes.OutputSink, in assettypes.InputSource, prompt string) (int, error) {
	out.PutMessage(prompt, assettypes.Neutral, true)
	for {
		line, err := in.ReadLine()
		if err != nil {
			return 0, err
		}
		id, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return id, nil
		}
		out.PutMessage(msgInvalidID, assettypes.Warning, true)
	}
}

// Edit collects new values for every editable field of the asset, validates
// them and saves the asset. Nothing is written unless every step succeeds.
func (e *Editor) Edit(id int) bool {
	original, err := e.assets.Get(id)
	if errors.Is(err, assettypes.ErrNotFound) {
		e.out.PutMessage(msgNotFound, assettypes.Warning, true)
		return false
	}
	if err != nil {
		e.fail("Error: could not load asset", err)
		return false
	}

	fields, err := e.fieldsFor(original.Kind)
	if err != nil {
		e.fail("Error: cannot edit asset", err)
		return false
	}

	working := original.Clone()
	for _, field := range fields {
		if field.Immutable {
			continue
		}

		value, err := e.collect(field, working)
		if errors.Is(err, errAborted) {
			e.out.PutMessage(msgAborted, assettypes.Neutral, true)
			return false
		}
		if err != nil {
			e.fail("Error: cannot edit asset", err)
			return false
		}
		if err := field.Set(working, value); err != nil {
			e.fail("Error: cannot edit asset", err)
			return false
		}
	}

	msg, err := e.validate(working)
	if err != nil {
		e.fail("Error: could not verify office", err)
		return false
	}
	if msg != "" {
		e.logger.Debug("Edit rejected", "asset", id, "reason", msg)
		e.out.PutMessage(msg, assettypes.Danger, true)
		return false
	}

	for _, field := range fields {
		if field.Immutable {
			continue
		}
		if err := field.Set(original, field.Get(working)); err != nil {
			e.fail("Error: cannot edit asset", err)
			return false
		}
	}

	if err := e.assets.Update(original); err != nil {
		e.fail("Error: could not save changes", err)
		return false
	}

	e.logger.Info("Asset updated", "asset", id)
	e.out.PutMessage(msgSaved, assettypes.Success, true)
	return true
}

// collect prompts for one field until the input parses as the field's type.
func (e *Editor) collect(field assettypes.FieldDescriptor, working *assettypes.Asset) (interface{}, error) {
	switch field.Type {
	case assettypes.FieldString, assettypes.FieldInteger, assettypes.FieldFloat, assettypes.FieldDate:
	default:
		return nil, fmt.Errorf("field %s: %w: %v", field.Name, assettypes.ErrUnknownFieldType, field.Type)
	}

	current := assettypes.FormatValue(field.Get(working))
	for {
		e.out.PutMessage(fmt.Sprintf(msgFieldPrompt, field.Name), assettypes.Neutral, true)
		line, err := e.in.ReadEditableLineWithDefault(current)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errAborted, err)
		}
		line = strings.TrimSpace(line)

		switch field.Type {
		case assettypes.FieldString:
			if line != "" {
				return line, nil
			}
			e.out.PutMessage(msgInvalidText, assettypes.Warning, true)
		case assettypes.FieldInteger:
			if n, err := strconv.Atoi(line); err == nil {
				return n, nil
			}
			e.out.PutMessage(msgInvalidNum, assettypes.Warning, true)
		case assettypes.FieldFloat:
			if f, err := strconv.ParseFloat(line, 64); err == nil {
				return f, nil
			}
			e.out.PutMessage(msgInvalidNum, assettypes.Warning, true)
		case assettypes.FieldDate:
			if d, err := assettypes.ParseDate(line); err == nil {
				return d, nil
			}
			e.out.PutMessage(msgInvalidDate, assettypes.Warning, true)
		}
	}
}

// validate returns the message for the first failed rule, or "". A lookup
// failure other than a missing office is returned as an error.
func (e *Editor) validate(a *assettypes.Asset) (string, error) {
	if a.Price < 0 {
		return msgNegPrice, nil
	}
	if a.ExpiryDate.Before(a.PurchaseDate) {
		return msgExpiryBefore, nil
	}
	if a.PurchaseDate.After(e.now()) {
		return msgFuture, nil
	}
	if _, err := e.offices.Get(a.OfficeID); err != nil {
		if errors.Is(err, assettypes.ErrNotFound) {
			return fmt.Sprintf(msgNoOffice, a.OfficeID), nil
		}
		return "", err
	}
	return "", nil
}

func (e *Editor) fail(prefix string, err error) {
	e.logger.Error(prefix, "error", err)
	e.out.PutMessage(fmt.Sprintf("%s: %v", prefix, err), assettypes.Danger, true)
}
