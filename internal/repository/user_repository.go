package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type userRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewUserWithTx(tx pgx.Tx) port.UserRepository {
	return &userRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *userRepository) GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	if userID == uuid.Nil {
		return domain.User{}, fmt.Errorf("%w: userID is empty", domain.ErrInvalidArgument)
	}

	row, err := r.q.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, mapError("q.GetUser", err)
	}

	user, err := mapUserRowToDomain(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("mapUserRowToDomain: %w", err)
	}

	return user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == uuid.Nil {
		return domain.User{}, fmt.Errorf("%w: userID is empty", domain.ErrInvalidArgument)
	}

	email, err := domain.NormalizeEmail(user.Email)
	if err != nil {
		return domain.User{}, err
	}
	user.Email = email

	params, err := mapUserToUpdateParams(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("mapUserToUpdateParams: %w", err)
	}

	row, err := r.q.InsertUser(ctx, db.InsertUserParams{
		ID:           params.ID,
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: user.PasswordHash,
		Addresses:    params.Addresses,
		Cart:         params.Cart,
		Wishlist:     params.Wishlist,
		OrderIds:     params.OrderIds,
	})
	if err != nil {
		return domain.User{}, mapError("q.InsertUser", err)
	}

	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt
	user.Cart.OwnerID = user.ID
	user.Wishlist.OwnerID = user.ID

	return user, nil
}

// UpdateUser serializes mutations of one user through a row lock held until commit.
func (r *userRepository) UpdateUser(ctx context.Context, userID uuid.UUID, fn port.UserMutation) (domain.User, error) {
	if userID == uuid.Nil {
		return domain.User{}, fmt.Errorf("%w: userID is empty", domain.ErrInvalidArgument)
	}
	if fn == nil {
		return domain.User{}, fmt.Errorf("%w: mutation is nil", domain.ErrInvalidArgument)
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.User, error) {
		row, err := q.GetUserForUpdate(ctx, userID)
		if err != nil {
			return domain.User{}, mapError("q.GetUserForUpdate", err)
		}

		user, err := mapUserRowToDomain(row)
		if err != nil {
			return domain.User{}, fmt.Errorf("mapUserRowToDomain: %w", err)
		}

		if err := fn(&user); err != nil {
			return domain.User{}, err
		}
		// the mutation must not re-key the document
		user.ID = userID

		params, err := mapUserToUpdateParams(user)
		if err != nil {
			return domain.User{}, fmt.Errorf("mapUserToUpdateParams: %w", err)
		}

		updatedAt, err := q.UpdateUser(ctx, params)
		if err != nil {
			return domain.User{}, mapError("q.UpdateUser", err)
		}
		user.UpdatedAt = updatedAt

		return user, nil
	})
}

func mapUserToUpdateParams(user domain.User) (db.UpdateUserParams, error) {
	addresses, err := marshalAddresses(user.Addresses)
	if err != nil {
		return db.UpdateUserParams{}, fmt.Errorf("marshalAddresses: %w", err)
	}

	cart, err := marshalCart(user.Cart.Items)
	if err != nil {
		return db.UpdateUserParams{}, fmt.Errorf("marshalCart: %w", err)
	}

	wishlist, err := marshalWishlist(user.Wishlist.Items)
	if err != nil {
		return db.UpdateUserParams{}, fmt.Errorf("marshalWishlist: %w", err)
	}

	orderIDs := user.OrderIDs
	if orderIDs == nil {
		orderIDs = []uuid.UUID{}
	}

	return db.UpdateUserParams{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Addresses: addresses,
		Cart:      cart,
		Wishlist:  wishlist,
		OrderIds:  orderIDs,
	}, nil
}

func mapUserRowToDomain(row db.User) (domain.User, error) {
	addresses, err := unmarshalAddresses(row.Addresses)
	if err != nil {
		return domain.User{}, fmt.Errorf("unmarshalAddresses: %w", err)
	}

	cartItems, err := unmarshalCart(row.Cart)
	if err != nil {
		return domain.User{}, fmt.Errorf("unmarshalCart: %w", err)
	}

	wishlistItems, err := unmarshalWishlist(row.Wishlist)
	if err != nil {
		return domain.User{}, fmt.Errorf("unmarshalWishlist: %w", err)
	}

	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Addresses:    addresses,
		Cart:         domain.Cart{OwnerID: row.ID, Items: cartItems},
		Wishlist:     domain.Wishlist{OwnerID: row.ID, Items: wishlistItems},
		OrderIDs:     row.OrderIds,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
