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

const supplierColumns = `supplier_id, name, tax_id, created_at, created_by, last_updated_at, last_updated_by`

// PgxSupplierRepository implements portsrepo.SupplierRepositoryFacade using pgxpool.
type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, translateError(err, "failed to query suppliers")
	}
	defer rows.Close()

	modelSuppliers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Supplier])
	if err != nil {
		return nil, translateError(err, "failed to scan suppliers")
	}
	return mapping.ToDomainSupplierSlice(modelSuppliers), nil
}

func (r *PgxSupplierRepository) FindSupplierByTaxID(ctx context.Context, taxID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE tax_id = $1;`
	rows, err := r.Pool.Query(ctx, query, taxID)
	if err != nil {
		return nil, translateError(err, "failed to query supplier by tax ID")
	}
	modelSupplier, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Supplier])
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find supplier with tax ID %s", taxID))
	}
	supplier := mapping.ToDomainSupplier(modelSupplier)
	return &supplier, nil
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		INSERT INTO suppliers (supplier_id, name, tax_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SupplierID,
		m.Name,
		m.TaxID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError(err, fmt.Sprintf("failed to save supplier %s", m.SupplierID))
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		UPDATE suppliers
		SET name = $2, tax_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE supplier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.SupplierID, m.Name, m.TaxID, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update supplier %s", m.SupplierID))
	}
	return requireAffected(tag, fmt.Sprintf("supplier %s", m.SupplierID))
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to delete supplier %s", supplierID))
	}
	return requireAffected(tag, fmt.Sprintf("supplier %s", supplierID))
}
