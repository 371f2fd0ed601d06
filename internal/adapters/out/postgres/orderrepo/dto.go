// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// The order aggregate is stored as a single row: scalar lifecycle fields in
// regular columns for querying, and the value-object snapshots (customer,
// package, slots, options, pickup info) as jsonb documents.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JSONB stores a raw JSON document in a jsonb column. GORM's default []byte
// mapping would send jsonb parameters as bytea, so the type implements
// Valuer/Scanner itself.
type JSONB json.RawMessage

// Value serializes the document for the database driver. Empty documents are
// stored as SQL NULL.
func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// Scan reads a jsonb column value.
func (j *JSONB) Scan(value any) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = JSONB(v)
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// GormDataType tells GORM migrations to create jsonb columns for this type.
func (JSONB) GormDataType() string {
	return "jsonb"
}

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its lowercase string form so raw queries and jobs can
// filter on it without knowing enum ordinals.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;index"`
	Status       string          `gorm:"type:varchar(16);index"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(10,2)"`
	EventDate    time.Time       `gorm:"type:date"`
	EventForName string
	CustomerInfo JSONB
	PackageInfo  JSONB
	Slots        JSONB
	Options      JSONB
	PickupInfo   JSONB
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// The json structs below fix the stored key names. Raw read-side queries
// address these keys directly (e.g. package_info->>'teardown_days_after'),
// so they are part of the storage contract, not an implementation detail.

type addressJSON struct {
	Street    string `json:"street"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

type customerInfoJSON struct {
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone,omitempty"`
	EventAddress addressJSON `json:"event_address"`
}

type packageInfoJSON struct {
	Name                string          `json:"name"`
	Price               decimal.Decimal `json:"price"`
	SignCount           int             `json:"sign_count"`
	SetupDaysBefore     int             `json:"setup_days_before"`
	TeardownDaysAfter   int             `json:"teardown_days_after"`
	ExtraDayBeforePrice decimal.Decimal `json:"extra_day_before_price"`
	ExtraDayAfterPrice  decimal.Decimal `json:"extra_day_after_price"`
}

type signRefJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	EventType string `json:"event_type,omitempty"`
	Style     string `json:"style,omitempty"`
	Color     string `json:"color,omitempty"`
}

type slotJSON struct {
	Position   int          `json:"position"`
	Sign       *signRefJSON `json:"sign,omitempty"`
	IsNameSlot bool         `json:"is_name_slot,omitempty"`
}

type optionsJSON struct {
	EarlyDelivery bool `json:"early_delivery"`
	LatePickup    bool `json:"late_pickup"`
}

type signConditionJSON struct {
	SignID    string `json:"sign_id"`
	Condition string `json:"condition"`
	Notes     string `json:"notes,omitempty"`
}

type pickupInfoJSON struct {
	PickupDate     time.Time           `json:"pickup_date"`
	SignConditions []signConditionJSON `json:"sign_conditions"`
	Notes          string              `json:"notes,omitempty"`
	PickedUpOnTime bool                `json:"picked_up_on_time"`
	LateFee        decimal.Decimal     `json:"late_fee"`
	CheckedBy      string              `json:"checked_by"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	customer := aggregate.Customer()
	customerRaw, err := json.Marshal(customerInfoJSON{
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
		EventAddress: addressJSON{
			Street:    customer.EventAddress.Street,
			Apartment: customer.EventAddress.Apartment,
			City:      customer.EventAddress.City,
			State:     customer.EventAddress.State,
			Zip:       customer.EventAddress.Zip,
		},
	})
	if err != nil {
		return OrderDTO{}, err
	}

	pkg := aggregate.PackageInfo()
	packageRaw, err := json.Marshal(packageInfoJSON{
		Name:                pkg.Name,
		Price:               pkg.Price.Decimal(),
		SignCount:           pkg.SignCount,
		SetupDaysBefore:     pkg.SetupDaysBefore,
		TeardownDaysAfter:   pkg.TeardownDaysAfter,
		ExtraDayBeforePrice: pkg.ExtraDayBeforePrice.Decimal(),
		ExtraDayAfterPrice:  pkg.ExtraDayAfterPrice.Decimal(),
	})
	if err != nil {
		return OrderDTO{}, err
	}

	slots := aggregate.Slots()
	slotDocs := make([]slotJSON, 0, len(slots))
	for _, slot := range slots {
		doc := slotJSON{
			Position:   slot.Position,
			IsNameSlot: slot.IsNameSlot,
		}
		if slot.Sign != nil {
			doc.Sign = &signRefJSON{
				ID:        slot.Sign.ID,
				Name:      slot.Sign.Name,
				EventType: slot.Sign.EventType,
				Style:     slot.Sign.Style,
				Color:     slot.Sign.Color,
			}
		}
		slotDocs = append(slotDocs, doc)
	}
	slotsRaw, err := json.Marshal(slotDocs)
	if err != nil {
		return OrderDTO{}, err
	}

	opts := aggregate.Options()
	optionsRaw, err := json.Marshal(optionsJSON{
		EarlyDelivery: opts.EarlyDelivery,
		LatePickup:    opts.LatePickup,
	})
	if err != nil {
		return OrderDTO{}, err
	}

	var pickupRaw JSONB
	if info := aggregate.PickupInfo(); info != nil {
		conditions := make([]signConditionJSON, 0, len(info.SignConditions))
		for _, sc := range info.SignConditions {
			conditions = append(conditions, signConditionJSON{
				SignID:    sc.SignID,
				Condition: string(sc.Condition),
				Notes:     sc.Notes,
			})
		}
		raw, marshalErr := json.Marshal(pickupInfoJSON{
			PickupDate:     info.PickupDate,
			SignConditions: conditions,
			Notes:          info.Notes,
			PickedUpOnTime: info.PickedUpOnTime,
			LateFee:        info.LateFee.Decimal(),
			CheckedBy:      info.CheckedBy,
		})
		if marshalErr != nil {
			return OrderDTO{}, marshalErr
		}
		pickupRaw = JSONB(raw)
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		Status:       aggregate.Status().String(),
		TotalAmount:  aggregate.TotalAmount().Decimal(),
		EventDate:    aggregate.EventDate(),
		EventForName: aggregate.EventForName(),
		CustomerInfo: JSONB(customerRaw),
		PackageInfo:  JSONB(packageRaw),
		Slots:        JSONB(slotsRaw),
		Options:      JSONB(optionsRaw),
		PickupInfo:   pickupRaw,
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including snapshots using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var customerDoc customerInfoJSON
	if err = json.Unmarshal(dto.CustomerInfo, &customerDoc); err != nil {
		return nil, err
	}
	customer := order.CustomerInfo{
		Name:  customerDoc.Name,
		Email: customerDoc.Email,
		Phone: customerDoc.Phone,
		EventAddress: order.Address{
			Street:    customerDoc.EventAddress.Street,
			Apartment: customerDoc.EventAddress.Apartment,
			City:      customerDoc.EventAddress.City,
			State:     customerDoc.EventAddress.State,
			Zip:       customerDoc.EventAddress.Zip,
		},
	}

	var packageDoc packageInfoJSON
	if err = json.Unmarshal(dto.PackageInfo, &packageDoc); err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(packageDoc.Price)
	if err != nil {
		return nil, err
	}
	extraBefore, err := kernel.NewMoney(packageDoc.ExtraDayBeforePrice)
	if err != nil {
		return nil, err
	}
	extraAfter, err := kernel.NewMoney(packageDoc.ExtraDayAfterPrice)
	if err != nil {
		return nil, err
	}
	packageInfo := order.PackageInfo{
		Name:                packageDoc.Name,
		Price:               price,
		SignCount:           packageDoc.SignCount,
		SetupDaysBefore:     packageDoc.SetupDaysBefore,
		TeardownDaysAfter:   packageDoc.TeardownDaysAfter,
		ExtraDayBeforePrice: extraBefore,
		ExtraDayAfterPrice:  extraAfter,
	}

	var slotDocs []slotJSON
	if err = json.Unmarshal(dto.Slots, &slotDocs); err != nil {
		return nil, err
	}
	slots := make([]order.Slot, 0, len(slotDocs))
	for _, doc := range slotDocs {
		slot := order.Slot{
			Position:   doc.Position,
			IsNameSlot: doc.IsNameSlot,
		}
		if doc.Sign != nil {
			slot.Sign = &order.SignRef{
				ID:        doc.Sign.ID,
				Name:      doc.Sign.Name,
				EventType: doc.Sign.EventType,
				Style:     doc.Sign.Style,
				Color:     doc.Sign.Color,
			}
		}
		slots = append(slots, slot)
	}

	var optionsDoc optionsJSON
	if err = json.Unmarshal(dto.Options, &optionsDoc); err != nil {
		return nil, err
	}
	options := order.Options{
		EarlyDelivery: optionsDoc.EarlyDelivery,
		LatePickup:    optionsDoc.LatePickup,
	}

	var pickupInfo *order.PickupInfo
	if len(dto.PickupInfo) != 0 {
		var pickupDoc pickupInfoJSON
		if err = json.Unmarshal(dto.PickupInfo, &pickupDoc); err != nil {
			return nil, err
		}
		lateFee, feeErr := kernel.NewMoney(pickupDoc.LateFee)
		if feeErr != nil {
			return nil, feeErr
		}
		conditions := make([]order.SignCondition, 0, len(pickupDoc.SignConditions))
		for _, sc := range pickupDoc.SignConditions {
			conditions = append(conditions, order.SignCondition{
				SignID:    sc.SignID,
				Condition: order.SignConditionValue(sc.Condition),
				Notes:     sc.Notes,
			})
		}
		pickupInfo = &order.PickupInfo{
			PickupDate:     pickupDoc.PickupDate,
			SignConditions: conditions,
			Notes:          pickupDoc.Notes,
			PickedUpOnTime: pickupDoc.PickedUpOnTime,
			LateFee:        lateFee,
			CheckedBy:      pickupDoc.CheckedBy,
		}
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		status,
		customer,
		dto.EventDate,
		dto.EventForName,
		packageInfo,
		slots,
		options,
		pickupInfo,
		totalAmount,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
