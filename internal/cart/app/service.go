package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrClosed       = errors.New("cart store closed")
	ErrNoCatalog    = errors.New("no catalog configured")
	ErrCartChanged  = errors.New("cart changed since snapshot")
)

// Service is the cart store. A single goroutine owns the cart state; every
// dispatch and every read is queued to it, so at most one mutation runs at a
// time.
type Service struct {
	id      string
	log     *slog.Logger
	catalog CatalogReader

	requests  chan request
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

type request struct {
	action domain.Action
	read   bool
	reply  chan result

	// When conditional is set the action applies only if the cart is still
	// at version.
	conditional bool
	version     uint64
}

type result struct {
	view    domain.View
	version uint64
	err     error
}

func NewService(log *slog.Logger, catalog CatalogReader) *Service {
	if log == nil {
		log = slog.Default()
	}
	id := uuid.NewString()
	s := &Service{
		id:       id,
		log:      log.With(slog.String("cart_id", id)),
		catalog:  catalog,
		requests: make(chan request),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.loop(domain.NewState())
	return s
}

func (s *Service) ID() string {
	return s.id
}

// Close stops the store. Pending and later calls fail with ErrClosed.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
	})
	<-s.done
}

func (s *Service) loop(state domain.State) {
	defer close(s.done)
	var version uint64
	for {
		select {
		case <-s.quit:
			return
		case req := <-s.requests:
			if req.read {
				req.reply <- result{view: domain.NewView(state), version: version}
				continue
			}
			if req.conditional && req.version != version {
				s.log.Warn("cart action skipped, cart changed",
					slog.String("kind", kindOf(req.action)),
					slog.Uint64("expected_version", req.version),
					slog.Uint64("version", version),
				)
				req.reply <- result{
					view:    domain.NewView(state),
					version: version,
					err:     fmt.Errorf("%w: expected version %d, at %d", ErrCartChanged, req.version, version),
				}
				continue
			}

			next, err := domain.Reduce(state, req.action)
			if err != nil {
				s.log.Error("cart action failed",
					slog.String("kind", kindOf(req.action)),
					slog.String("sku", domain.SKUOf(req.action)),
					slog.Any("err", err),
				)
				req.reply <- result{view: domain.NewView(state), version: version, err: err}
				continue
			}
			prev := state
			state = next
			version++

			view := domain.NewView(state)
			s.log.Debug("cart action applied",
				slog.String("kind", kindOf(req.action)),
				slog.String("sku", domain.SKUOf(req.action)),
				slog.Int("total_items", view.TotalItems),
				slog.String("total_price", view.FormattedTotal()),
				slog.Uint64("version", version),
			)
			if req.conditional {
				// Conditional callers get the cart as it was before the action.
				view = domain.NewView(prev)
			}
			req.reply <- result{view: view, version: version}
		}
	}
}

func (s *Service) do(ctx context.Context, req request) (domain.View, error) {
	res := s.send(ctx, req)
	return res.view, res.err
}

func (s *Service) send(ctx context.Context, req request) result {
	req.reply = make(chan result, 1)

	select {
	case <-ctx.Done():
		return result{err: ctx.Err()}
	case <-s.quit:
		return result{err: ErrClosed}
	case s.requests <- req:
	}

	// The loop always answers an accepted request.
	return <-req.reply
}

// Snapshot returns the current view together with the cart version. The
// version moves on every applied action.
func (s *Service) Snapshot(ctx context.Context) (domain.View, uint64, error) {
	res := s.send(ctx, request{read: true})
	return res.view, res.version, res.err
}

// SubmitAt clears the cart only if it is still at version, and returns the
// cart as it was right before clearing. Otherwise the cart is left alone and
// ErrCartChanged is returned.
func (s *Service) SubmitAt(ctx context.Context, version uint64) (domain.View, error) {
	res := s.send(ctx, request{action: domain.Submit{}, conditional: true, version: version})
	return res.view, res.err
}

// Dispatch applies a to the cart and returns the resulting view.
func (s *Service) Dispatch(ctx context.Context, a domain.Action) (domain.View, error) {
	if err := validate(a); err != nil {
		s.log.Error("cart action rejected",
			slog.String("kind", kindOf(a)),
			slog.String("sku", domain.SKUOf(a)),
			slog.Any("err", err),
		)
		return domain.View{}, err
	}
	return s.do(ctx, request{action: a})
}

func (s *Service) View(ctx context.Context) (domain.View, error) {
	return s.do(ctx, request{read: true})
}

// Cart returns the line items ordered by sku suffix.
func (s *Service) Cart(ctx context.Context) ([]domain.LineItem, error) {
	v, err := s.View(ctx)
	if err != nil {
		return nil, err
	}
	return v.Items, nil
}

func (s *Service) TotalItems(ctx context.Context) (int, error) {
	v, err := s.View(ctx)
	if err != nil {
		return 0, err
	}
	return v.TotalItems, nil
}

// TotalPrice returns the cart total formatted as USD.
func (s *Service) TotalPrice(ctx context.Context) (string, error) {
	v, err := s.View(ctx)
	if err != nil {
		return "", err
	}
	return v.FormattedTotal(), nil
}

// AddProduct adds one unit of the catalog product with the given sku.
func (s *Service) AddProduct(ctx context.Context, sku string) (domain.View, error) {
	if s.catalog == nil {
		return domain.View{}, ErrNoCatalog
	}
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return domain.View{}, ErrInvalidInput
	}

	p, err := s.catalog.GetProduct(ctx, sku)
	if err != nil {
		return domain.View{}, fmt.Errorf("lookup product %s: %w", sku, err)
	}
	return s.Dispatch(ctx, domain.Add{SKU: p.SKU, Name: p.Name, Price: p.Price})
}

func (s *Service) Submit(ctx context.Context) (domain.View, error) {
	return s.Dispatch(ctx, domain.Submit{})
}

func validate(a domain.Action) error {
	switch act := a.(type) {
	case domain.Add:
		if strings.TrimSpace(act.SKU) == "" || act.Price.IsNegative() {
			return fmt.Errorf("%w: add needs a sku and a non-negative price", ErrInvalidInput)
		}
	case domain.SetQuantity:
		if strings.TrimSpace(act.SKU) == "" || act.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be at least 1, got %d", ErrInvalidInput, act.Quantity)
		}
	}
	return nil
}

func kindOf(a domain.Action) string {
	if k := domain.KindOf(a); k != "" {
		return string(k)
	}
	return fmt.Sprintf("%T", a)
}
