package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData loads a small set of companies and employees for local
// development. Safe to run repeatedly: it bails out when any company
// already exists.
func SeedDemoData(db *pgxpool.Pool) error {
	ctx := context.Background()

	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM companies").Scan(&count); err != nil {
		return fmt.Errorf("counting companies: %w", err)
	}
	if count > 0 {
		log.Println("  - companies already present, skipping demo data")
		return nil
	}

	_, err := db.Exec(ctx, `
		INSERT INTO companies (legal_name, trade_name, tax_id, kind, address, primary_contact, status) VALUES
		('Predial Silva Ltda', 'Predial Silva', '12.345.678/0001-90', 'headquarters',
		 '{"street": "Rua das Flores", "number": "100", "district": "Centro", "city": "Sao Paulo", "state": "SP", "postal_code": "01000-000"}',
		 '{"name": "Carlos Silva", "email": "carlos@predialsilva.com.br", "phone": "+55 11 98888-0001"}',
		 'active'),
		('Condominio Jardim Azul', 'Jardim Azul', '98.765.432/0001-10', 'headquarters',
		 '{"street": "Av. Paulista", "number": "2200", "district": "Bela Vista", "city": "Sao Paulo", "state": "SP", "postal_code": "01310-300"}',
		 '{"name": "Maria Souza", "email": "sindica@jardimazul.com.br", "phone": "+55 11 97777-0002"}',
		 'active')`)
	if err != nil {
		return fmt.Errorf("inserting demo companies: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO employees (full_name, tax_id, badge_number, role, specialties, status) VALUES
		('Joao Pereira', '123.456.789-00', 'EMP-0001', 'senior', ARRAY['electrical', 'refrigeration'], 'active'),
		('Ana Lima', '987.654.321-00', 'EMP-0002', 'mid', ARRAY['hydraulic'], 'active'),
		('Pedro Santos', '111.222.333-44', 'EMP-0003', 'junior', ARRAY['general_services', 'painting'], 'active')`)
	if err != nil {
		return fmt.Errorf("inserting demo employees: %w", err)
	}

	log.Println("  - demo companies and employees created")
	return nil
}
