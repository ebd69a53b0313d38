package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	portsrepo "github.com/SscSPs/almacen_erp_lite/internal/core/ports/repositories"
	"github.com/SscSPs/almacen_erp_lite/internal/models"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const purchaseColumns = `purchase_id, code, supplier_id, raw_material, purchase_date,
	total_cost, advance, balance, invoice_code, invoice_date, service_order_code, notes, service_status,
	carrier_id, transport_start_date, transport_end_date,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxPurchaseRepository implements portsrepo.PurchaseRepositoryFacade using pgxpool.
type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(pool *pgxpool.Pool) *PgxPurchaseRepository {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

func scanPurchase(row pgx.CollectableRow) (models.Purchase, error) {
	var p models.Purchase
	err := row.Scan(
		&p.PurchaseID,
		&p.Code,
		&p.SupplierID,
		&p.RawMaterial,
		&p.PurchaseDate,
		&p.TotalCost,
		&p.Advance,
		&p.Balance,
		&p.InvoiceCode,
		&p.InvoiceDate,
		&p.ServiceOrderCode,
		&p.Notes,
		&p.ServiceStatus,
		&p.CarrierID,
		&p.TransportStartDate,
		&p.TransportEndDate,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+purchaseColumns+` FROM purchases ORDER BY code DESC;`)
	if err != nil {
		return nil, translateError(err, "failed to query purchases")
	}
	defer rows.Close()

	modelPurchases, err := pgx.CollectRows(rows, scanPurchase)
	if err != nil {
		return nil, translateError(err, "failed to scan purchases")
	}
	return mapping.ToDomainPurchaseSlice(modelPurchases), nil
}

// FindLatestPurchaseCode orders by length first so that a 5-digit suffix sorts
// after every 4-digit one.
func (r *PgxPurchaseRepository) FindLatestPurchaseCode(ctx context.Context, codePrefix string) (string, error) {
	query := `
		SELECT code FROM purchases
		WHERE starts_with(code, $1)
		ORDER BY char_length(code) DESC, code DESC
		LIMIT 1;
	`
	var code string
	err := r.Pool.QueryRow(ctx, query, codePrefix).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", translateError(err, "failed to find latest purchase code")
	}
	return code, nil
}

func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PurchaseID,
		m.Code,
		m.SupplierID,
		m.RawMaterial,
		m.PurchaseDate,
		m.TotalCost,
		m.Advance,
		m.Balance,
		m.InvoiceCode,
		m.InvoiceDate,
		m.ServiceOrderCode,
		m.Notes,
		m.ServiceStatus,
		m.CarrierID,
		m.TransportStartDate,
		m.TransportEndDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError(err, fmt.Sprintf("failed to save purchase %s", m.Code))
}

func (r *PgxPurchaseRepository) UpdatePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)
	query := `
		UPDATE purchases
		SET supplier_id = $2, raw_material = $3, purchase_date = $4,
			total_cost = $5, advance = $6, balance = $7,
			invoice_code = $8, invoice_date = $9, service_order_code = $10, notes = $11, service_status = $12,
			carrier_id = $13, transport_start_date = $14, transport_end_date = $15,
			last_updated_at = $16, last_updated_by = $17
		WHERE purchase_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PurchaseID,
		m.SupplierID,
		m.RawMaterial,
		m.PurchaseDate,
		m.TotalCost,
		m.Advance,
		m.Balance,
		m.InvoiceCode,
		m.InvoiceDate,
		m.ServiceOrderCode,
		m.Notes,
		m.ServiceStatus,
		m.CarrierID,
		m.TransportStartDate,
		m.TransportEndDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update purchase %s", m.PurchaseID))
	}
	return requireAffected(tag, fmt.Sprintf("purchase %s", m.PurchaseID))
}

func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to delete purchase %s", purchaseID))
	}
	return requireAffected(tag, fmt.Sprintf("purchase %s", purchaseID))
}
