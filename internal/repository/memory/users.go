package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type userRepository struct {
	store *Store
	tx    *state
}

func (r *userRepository) GetUser(_ context.Context, userID uuid.UUID) (domain.User, error) {
	if userID == uuid.Nil {
		return domain.User{}, fmt.Errorf("%w: userID is empty", domain.ErrInvalidArgument)
	}

	var user domain.User
	err := r.store.access(r.tx, func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return fmt.Errorf("%w: user[%s]", domain.ErrNotFound, userID)
		}
		user = cloneUser(u)
		return nil
	})

	return user, err
}

func (r *userRepository) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	if user.ID == uuid.Nil {
		return domain.User{}, fmt.Errorf("%w: userID is empty", domain.ErrInvalidArgument)
	}

	email, err := domain.NormalizeEmail(user.Email)
	if err != nil {
		return domain.User{}, err
	}
	user.Email = email

	err = r.store.access(r.tx, func(st *state) error {
		if _, ok := st.users[user.ID]; ok {
			return fmt.Errorf("%w: user[%s] already exists", domain.ErrConflict, user.ID)
		}
		if err := st.checkEmail(user.ID, user.Email); err != nil {
			return err
		}

		now := r.store.now()
		user.CreatedAt = now
		user.UpdatedAt = now
		user.Cart.OwnerID = user.ID
		user.Wishlist.OwnerID = user.ID

		st.users[user.ID] = cloneUser(user)
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// UpdateUser applies fn to a copy and stores it only when fn succeeds.
func (r *userRepository) UpdateUser(_ context.Context, userID uuid.UUID, fn port.UserMutation) (domain.User, error) {
	if userID == uuid.Nil {
		return domain.User{}, fmt.Errorf("%w: userID is empty", domain.ErrInvalidArgument)
	}
	if fn == nil {
		return domain.User{}, fmt.Errorf("%w: mutation is nil", domain.ErrInvalidArgument)
	}

	var updated domain.User
	err := r.store.access(r.tx, func(st *state) error {
		current, ok := st.users[userID]
		if !ok {
			return fmt.Errorf("%w: user[%s]", domain.ErrNotFound, userID)
		}

		user := cloneUser(current)
		if err := fn(&user); err != nil {
			return err
		}
		user.ID = userID

		if err := st.checkEmail(userID, user.Email); err != nil {
			return err
		}

		user.UpdatedAt = r.store.now()
		st.users[userID] = cloneUser(user)
		updated = user
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	return updated, nil
}

func (st *state) checkEmail(userID uuid.UUID, email string) error {
	for id, u := range st.users {
		if id != userID && u.Email == email {
			return fmt.Errorf("%w: email[%s] is taken", domain.ErrConflict, email)
		}
	}
	return nil
}
