package records

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// dateLayout is the stored date format (calendar date, no time).
const dateLayout = "2006-01-02"

// firstOrderNumber is used when the orders collection has no numbered ids.
const firstOrderNumber = 1000

// applyDefaults fills the fields the admin forms left blank.
func applyDefaults(collection string, rec types.Record, now time.Time) {
	today := now.Format(dateLayout)
	setIfEmpty := func(field string, v any) {
		if rec.Str(field) == "" {
			rec[field] = v
		}
	}

	switch collection {
	case types.OrdersCollection:
		setIfEmpty(types.FieldStatus, types.OrderPending)
		setIfEmpty(types.FieldDate, today)
	case types.UsersCollection:
		setIfEmpty(types.FieldStatus, types.UserPending)
		setIfEmpty(types.FieldPlan, types.PlanStarter)
		setIfEmpty(types.FieldDate, today)
	case types.NotificationsCollection:
		setIfEmpty("type", types.NotifyInfo)
		setIfEmpty("time", "À l'instant")
		if _, ok := rec[types.FieldUnread]; !ok {
			rec[types.FieldUnread] = true
		}
	}
}

// nextID generates an id for a new record. Orders continue the "#<n>"
// sequence, users and notifications the numeric one, products get a UUID v7.
func nextID(collection string, recs []types.Record) any {
	switch collection {
	case types.OrdersCollection:
		highest := firstOrderNumber - 1
		for _, rec := range recs {
			n, err := strconv.Atoi(strings.TrimPrefix(rec.ID(), "#"))
			if err == nil && n > highest {
				highest = n
			}
		}
		return fmt.Sprintf("#%d", highest+1)
	case types.UsersCollection, types.NotificationsCollection:
		highest := 0.0
		for _, rec := range recs {
			n := types.ToNumber(rec[types.FieldID])
			if !math.IsNaN(n) && n > highest {
				highest = n
			}
		}
		return math.Floor(highest) + 1
	default:
		id, err := uuid.NewV7()
		if err != nil {
			return uuid.New().String()
		}
		return id.String()
	}
}

// validate checks a record about to be written. Records already in the store
// are never rejected on read; this only guards the admin forms.
func validate(collection string, rec types.Record) error {
	if rec.ID() == "" {
		return types.ErrInvalidID
	}

	switch collection {
	case types.OrdersCollection:
		if err := requireFields(rec, types.FieldClient, types.FieldProduct); err != nil {
			return err
		}
		if !types.ValidOrderStatus(rec.Str(types.FieldStatus)) {
			return fmt.Errorf("%w: %q", types.ErrInvalidStatus, rec.Str(types.FieldStatus))
		}
		if err := checkAmount(rec[types.FieldAmount]); err != nil {
			return err
		}
		return checkDate(rec.Str(types.FieldDate))

	case types.UsersCollection:
		if err := requireFields(rec, types.FieldName, types.FieldEmail); err != nil {
			return err
		}
		if !strings.Contains(rec.Str(types.FieldEmail), "@") {
			return fmt.Errorf("%w: email %q", types.ErrInvalidData, rec.Str(types.FieldEmail))
		}
		if !types.ValidUserStatus(rec.Str(types.FieldStatus)) {
			return fmt.Errorf("%w: %q", types.ErrInvalidStatus, rec.Str(types.FieldStatus))
		}
		if !types.ValidPlan(rec.Str(types.FieldPlan)) {
			return fmt.Errorf("%w: plan %q", types.ErrInvalidData, rec.Str(types.FieldPlan))
		}
		return checkDate(rec.Str(types.FieldDate))

	case types.ProductsCollection:
		if err := requireFields(rec, types.FieldName); err != nil {
			return err
		}
		if v, ok := rec[types.FieldPrice]; ok {
			return checkAmount(v)
		}
		return nil

	case types.NotificationsCollection:
		return requireFields(rec, "text")
	}
	return nil
}

func requireFields(rec types.Record, fields ...string) error {
	for _, f := range fields {
		if strings.TrimSpace(rec.Str(f)) == "" {
			return fmt.Errorf("%w: %s is required", types.ErrInvalidData, f)
		}
	}
	return nil
}

func checkAmount(v any) error {
	n := types.ToNumber(v)
	if str, ok := v.(string); ok {
		var err error
		if n, err = types.ParseNumber(str); err != nil {
			return fmt.Errorf("%w: %v", types.ErrInvalidAmount, v)
		}
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return fmt.Errorf("%w: %v", types.ErrInvalidAmount, v)
	}
	return nil
}

func checkDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("%w: %q", types.ErrInvalidDate, s)
	}
	return nil
}
