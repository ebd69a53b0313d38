package mapping

import (
	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	"github.com/SscSPs/almacen_erp_lite/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:                 d.UserID,
		Name:                   d.Name,
		NationalID:             d.NationalID,
		Email:                  d.Email,
		PasswordHash:           d.PasswordHash,
		AuditFields:            ToModelAuditFields(d.AuditFields),
		RefreshTokenExpiryTime: toNullTime(d.RefreshTokenExpiryTime),
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash.String = d.RefreshTokenHash
		m.RefreshTokenHash.Valid = true
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                 m.UserID,
		Name:                   m.Name,
		NationalID:             m.NationalID,
		Email:                  m.Email,
		PasswordHash:           m.PasswordHash,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		RefreshTokenHash:       m.RefreshTokenHash.String,
		RefreshTokenExpiryTime: fromNullTime(m.RefreshTokenExpiryTime),
	}
}
