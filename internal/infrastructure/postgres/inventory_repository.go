package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// Asegura que InventoryRepo implementa repository.InventoryRepository.
var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
// La unicidad del par (product_id, company_id) es un constraint de la tabla;
// la violación concurrente se mapea a domain.ErrDuplicate.
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository construye el adaptador de persistencia para inventario.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

const inventoryColumns = `id, product_id, company_id, quantity, created_at, updated_at`

// Create persiste un nuevo registro de inventario.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.CompanyID, inv.Quantity,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", mapUnique(err))
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1`
	return r.queryOne(query, id)
}

// GetByProductAndCompany obtiene el registro del par (producto, empresa).
func (r *InventoryRepo) GetByProductAndCompany(productID, companyID string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = $1 AND company_id = $2`
	return r.queryOne(query, productID, companyID)
}

func (r *InventoryRepo) queryOne(query string, args ...any) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&inv.ID, &inv.ProductID, &inv.CompanyID, &inv.Quantity,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// Update actualiza un registro existente.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET product_id = $2, company_id = $3, quantity = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.CompanyID, inv.Quantity, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", mapUnique(err))
	}
	return nil
}

// List devuelve todos los registros (el alcance se aplica en la capa de aplicación).
func (r *InventoryRepo) List() ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY created_at DESC`
	return r.queryMany(query)
}

// ListByProduct devuelve los registros de un producto.
func (r *InventoryRepo) ListByProduct(productID string) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = $1 ORDER BY created_at DESC`
	return r.queryMany(query, productID)
}

func (r *InventoryRepo) queryMany(query string, args ...any) ([]*entity.Inventory, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.CompanyID, &inv.Quantity,
			&inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Delete elimina un registro por ID.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}
