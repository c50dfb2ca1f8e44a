package postgres

import (
	"context"
	"database/sql"

	"github.com/Iscgrou/repbill/internal/domain/representative"
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/logger"
	"github.com/Iscgrou/repbill/internal/postgres"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/shopspring/decimal"
)

type representativeRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

func NewRepresentativeRepository(client postgres.IClient, log *logger.Logger) representative.Repository {
	return &representativeRepository{client: client, logger: log}
}

// representativeRow flattens the pricing profile into columns
type representativeRow struct {
	ID            string `db:"id"`
	AdminUsername string `db:"admin_username"`
	FullName      string `db:"full_name"`
	Phone         string `db:"phone"`
	TelegramID    string `db:"telegram_id"`
	StoreName     string `db:"store_name"`

	LimitedPrice1         decimal.Decimal `db:"limited_price_1"`
	LimitedPrice2         decimal.Decimal `db:"limited_price_2"`
	LimitedPrice3         decimal.Decimal `db:"limited_price_3"`
	LimitedPrice4         decimal.Decimal `db:"limited_price_4"`
	LimitedPrice5         decimal.Decimal `db:"limited_price_5"`
	LimitedPrice6         decimal.Decimal `db:"limited_price_6"`
	UnlimitedMonthlyPrice decimal.Decimal `db:"unlimited_monthly_price"`

	Status string `db:"status"`
}

const representativeColumns = `
	id, admin_username, full_name, phone, telegram_id, store_name,
	limited_price_1, limited_price_2, limited_price_3,
	limited_price_4, limited_price_5, limited_price_6,
	unlimited_monthly_price, status`

func (r *representativeRow) toDomain() *representative.Representative {
	rep := &representative.Representative{
		ID:            r.ID,
		AdminUsername: r.AdminUsername,
		FullName:      r.FullName,
		Phone:         r.Phone,
		TelegramID:    r.TelegramID,
		StoreName:     r.StoreName,
	}
	rep.Pricing.LimitedPrices = [6]decimal.Decimal{
		r.LimitedPrice1, r.LimitedPrice2, r.LimitedPrice3,
		r.LimitedPrice4, r.LimitedPrice5, r.LimitedPrice6,
	}
	rep.Pricing.UnlimitedMonthlyPrice = r.UnlimitedMonthlyPrice
	rep.Status = types.Status(r.Status)
	return rep
}

func (r *representativeRepository) Create(ctx context.Context, rep *representative.Representative) error {
	q := r.client.Querier(ctx)
	_, err := q.ExecContext(ctx, `
		INSERT INTO representatives (
			id, admin_username, full_name, phone, telegram_id, store_name,
			limited_price_1, limited_price_2, limited_price_3,
			limited_price_4, limited_price_5, limited_price_6,
			unlimited_monthly_price, status, created_at, updated_at, created_by, updated_by
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		rep.ID, rep.AdminUsername, rep.FullName, rep.Phone, rep.TelegramID, rep.StoreName,
		rep.Pricing.LimitedPrices[0], rep.Pricing.LimitedPrices[1], rep.Pricing.LimitedPrices[2],
		rep.Pricing.LimitedPrices[3], rep.Pricing.LimitedPrices[4], rep.Pricing.LimitedPrices[5],
		rep.Pricing.UnlimitedMonthlyPrice, rep.Status, rep.CreatedAt, rep.UpdatedAt,
		rep.CreatedBy, rep.UpdatedBy,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create representative").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *representativeRepository) Get(ctx context.Context, id string) (*representative.Representative, error) {
	return r.getOne(ctx, `SELECT `+representativeColumns+` FROM representatives WHERE id = $1 AND status != 'deleted'`, id)
}

func (r *representativeRepository) GetByAdminUsername(ctx context.Context, adminUsername string) (*representative.Representative, error) {
	return r.getOne(ctx, `SELECT `+representativeColumns+` FROM representatives WHERE admin_username = $1 AND status != 'deleted'`, adminUsername)
}

func (r *representativeRepository) getOne(ctx context.Context, query string, arg any) (*representative.Representative, error) {
	q := r.client.Querier(ctx)
	var row representativeRow
	if err := q.GetContext(ctx, &row, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("representative not found").
				WithHint("Representative not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get representative").
			Mark(ierr.ErrDatabase)
	}
	return row.toDomain(), nil
}

func (r *representativeRepository) GetPricingProfile(ctx context.Context, id string) (*representative.PricingProfile, error) {
	rep, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &rep.Pricing, nil
}

func (r *representativeRepository) UpdatePricingProfile(ctx context.Context, id string, profile *representative.PricingProfile) error {
	q := r.client.Querier(ctx)
	res, err := q.ExecContext(ctx, `
		UPDATE representatives SET
			limited_price_1 = $2, limited_price_2 = $3, limited_price_3 = $4,
			limited_price_4 = $5, limited_price_5 = $6, limited_price_6 = $7,
			unlimited_monthly_price = $8, updated_at = now()
		WHERE id = $1 AND status != 'deleted'`,
		id,
		profile.LimitedPrices[0], profile.LimitedPrices[1], profile.LimitedPrices[2],
		profile.LimitedPrices[3], profile.LimitedPrices[4], profile.LimitedPrices[5],
		profile.UnlimitedMonthlyPrice,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update pricing profile").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("representative not found").
			WithHint("Representative not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *representativeRepository) List(ctx context.Context) ([]*representative.Representative, error) {
	q := r.client.Querier(ctx)
	var rows []representativeRow
	if err := q.SelectContext(ctx, &rows, `SELECT `+representativeColumns+` FROM representatives WHERE status != 'deleted' ORDER BY admin_username`); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list representatives").
			Mark(ierr.ErrDatabase)
	}
	reps := make([]*representative.Representative, len(rows))
	for i := range rows {
		reps[i] = rows[i].toDomain()
	}
	return reps, nil
}
