package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/pricing"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
)

// catalogLookup adapts the product repository to the pricing engine's
// read-only catalog view
type catalogLookup struct {
	products repository.ProductRepository
}

// NewCatalogLookup wraps a product repository as a pricing catalog lookup
func NewCatalogLookup(products repository.ProductRepository) pricing.CatalogLookup {
	return &catalogLookup{products: products}
}

func (l *catalogLookup) ProductSnapshot(ctx context.Context, id uuid.UUID) (*pricing.ProductSnapshot, error) {
	product, err := l.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return &pricing.ProductSnapshot{
		ID:              product.ID,
		Name:            product.Name,
		SKU:             product.SKU,
		UnitPrice:       product.Price,
		StockAvailable:  product.Stock,
		CategoryID:      product.CategoryID,
		PrimaryImageURL: product.PrimaryImageURL,
		Active:          product.IsActive,
	}, nil
}

// couponLookup adapts the coupon repository to the pricing engine's
// read-only coupon view
type couponLookup struct {
	coupons repository.CouponRepository
}

// NewCouponLookup wraps a coupon repository as a pricing coupon lookup
func NewCouponLookup(coupons repository.CouponRepository) pricing.CouponLookup {
	return &couponLookup{coupons: coupons}
}

func (l *couponLookup) CouponSnapshot(ctx context.Context, code string) (*pricing.CouponSnapshot, error) {
	coupon, err := l.coupons.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, nil
	}
	return couponToSnapshot(coupon), nil
}

func couponToSnapshot(coupon *entity.Coupon) *pricing.CouponSnapshot {
	snap := &pricing.CouponSnapshot{
		Code:              coupon.Code,
		Type:              coupon.Type,
		Value:             coupon.Value,
		MinPurchaseAmount: coupon.MinPurchaseAmount,
		MaxDiscountAmount: coupon.MaxDiscountAmount,
		StartDate:         coupon.StartDate,
		ExpiryDate:        coupon.ExpiryDate,
		UsageLimit:        coupon.UsageLimit,
		UsageCount:        coupon.UsageCount,
		Active:            coupon.IsActive,
	}
	for _, p := range coupon.ApplicableProducts {
		snap.ApplicableProducts = append(snap.ApplicableProducts, p.ID)
	}
	for _, c := range coupon.ApplicableCategories {
		snap.ApplicableCategories = append(snap.ApplicableCategories, c.ID)
	}
	return snap
}
