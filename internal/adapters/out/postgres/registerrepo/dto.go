// Package registerrepo persists daily cash register aggregates. The date
// column carries a unique index: the database is the final arbiter of the
// one-register-per-day rule.
package registerrepo

import (
	"encoding/json"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/register"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterDTO represents the database structure for persisting register
// aggregates. Deposits and withdrawals are small append-only collections
// owned by the register, stored as JSON documents in the row.
type RegisterDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date           time.Time `gorm:"type:date;uniqueIndex"`
	Status         string    `gorm:"index"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(20,4)"`
	TotalCash      decimal.Decimal `gorm:"type:decimal(20,4)"`
	TotalPix       decimal.Decimal `gorm:"type:decimal(20,4)"`
	Deposits       string          `gorm:"type:jsonb"`
	Withdrawals    string          `gorm:"type:jsonb"`
	ClosingBalance decimal.Decimal `gorm:"type:decimal(20,4)"`
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for register entities.
func (RegisterDTO) TableName() string {
	return "registers"
}

type movementJSON struct {
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	OccurredAt time.Time       `json:"occurredAt"`
}

func movementsToJSON(movements []register.Movement) (string, error) {
	raw := make([]movementJSON, 0, len(movements))
	for _, movement := range movements {
		raw = append(raw, movementJSON{
			Amount:     movement.Amount(),
			Reason:     movement.Reason(),
			OccurredAt: movement.OccurredAt(),
		})
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func movementsFromJSON(encoded string) ([]register.Movement, error) {
	var raw []movementJSON
	if encoded != "" {
		if err := json.Unmarshal([]byte(encoded), &raw); err != nil {
			return nil, err
		}
	}

	movements := make([]register.Movement, 0, len(raw))
	for _, entry := range raw {
		movement, err := register.RestoreMovement(entry.Amount, entry.Reason, entry.OccurredAt)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}

	return movements, nil
}

// fromDomain converts a register domain aggregate to its database representation.
func fromDomain(aggregate *register.Register) (RegisterDTO, error) {
	deposits, err := movementsToJSON(aggregate.Deposits())
	if err != nil {
		return RegisterDTO{}, err
	}

	withdrawals, err := movementsToJSON(aggregate.Withdrawals())
	if err != nil {
		return RegisterDTO{}, err
	}

	return RegisterDTO{
		ID:             aggregate.ID().Bytes(),
		Date:           aggregate.Date().Time(),
		Status:         aggregate.Status().String(),
		OpeningBalance: aggregate.OpeningBalance(),
		TotalCash:      aggregate.TotalCash(),
		TotalPix:       aggregate.TotalPix(),
		Deposits:       deposits,
		Withdrawals:    withdrawals,
		ClosingBalance: aggregate.ClosingBalance(),
		Notes:          aggregate.Notes(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to a register domain aggregate using
// RestoreRegister.
func toDomain(dto RegisterDTO) (*register.Register, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := register.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	deposits, err := movementsFromJSON(dto.Deposits)
	if err != nil {
		return nil, err
	}

	withdrawals, err := movementsFromJSON(dto.Withdrawals)
	if err != nil {
		return nil, err
	}

	return register.RestoreRegister(
		id,
		kernel.DateOf(dto.Date),
		status,
		dto.OpeningBalance,
		dto.TotalCash,
		dto.TotalPix,
		deposits,
		withdrawals,
		dto.ClosingBalance,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
