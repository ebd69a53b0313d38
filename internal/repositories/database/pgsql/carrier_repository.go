package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	portsrepo "github.com/SscSPs/almacen_erp_lite/internal/core/ports/repositories"
	"github.com/SscSPs/almacen_erp_lite/internal/models"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const carrierColumns = `carrier_id, name, tax_id, account_type, account_number, interbank_code,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxCarrierRepository implements portsrepo.CarrierRepositoryFacade using pgxpool.
type PgxCarrierRepository struct {
	BaseRepository
}

func newPgxCarrierRepository(pool *pgxpool.Pool) portsrepo.CarrierRepositoryFacade {
	return &PgxCarrierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CarrierRepositoryFacade = (*PgxCarrierRepository)(nil)

func (r *PgxCarrierRepository) ListCarriers(ctx context.Context) ([]domain.Carrier, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+carrierColumns+` FROM carriers ORDER BY name;`)
	if err != nil {
		return nil, translateError(err, "failed to query carriers")
	}
	defer rows.Close()

	modelCarriers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Carrier])
	if err != nil {
		return nil, translateError(err, "failed to scan carriers")
	}
	return mapping.ToDomainCarrierSlice(modelCarriers), nil
}

func (r *PgxCarrierRepository) FindCarrierByTaxID(ctx context.Context, taxID string) (*domain.Carrier, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+carrierColumns+` FROM carriers WHERE tax_id = $1;`, taxID)
	if err != nil {
		return nil, translateError(err, "failed to query carrier by tax ID")
	}
	modelCarrier, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Carrier])
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find carrier with tax ID %s", taxID))
	}
	carrier := mapping.ToDomainCarrier(modelCarrier)
	return &carrier, nil
}

func (r *PgxCarrierRepository) SaveCarrier(ctx context.Context, carrier domain.Carrier) error {
	m := mapping.ToModelCarrier(carrier)
	query := `
		INSERT INTO carriers (carrier_id, name, tax_id, account_type, account_number, interbank_code,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CarrierID,
		m.Name,
		m.TaxID,
		m.AccountType,
		m.AccountNumber,
		m.InterbankCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError(err, fmt.Sprintf("failed to save carrier %s", m.CarrierID))
}

func (r *PgxCarrierRepository) UpdateCarrier(ctx context.Context, carrier domain.Carrier) error {
	m := mapping.ToModelCarrier(carrier)
	query := `
		UPDATE carriers
		SET name = $2, tax_id = $3, account_type = $4, account_number = $5, interbank_code = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE carrier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CarrierID,
		m.Name,
		m.TaxID,
		m.AccountType,
		m.AccountNumber,
		m.InterbankCode,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update carrier %s", m.CarrierID))
	}
	return requireAffected(tag, fmt.Sprintf("carrier %s", m.CarrierID))
}

func (r *PgxCarrierRepository) DeleteCarrier(ctx context.Context, carrierID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM carriers WHERE carrier_id = $1;`, carrierID)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to delete carrier %s", carrierID))
	}
	return requireAffected(tag, fmt.Sprintf("carrier %s", carrierID))
}
