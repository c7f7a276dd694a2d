package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"baleconnect/internal/core/application/usecases/commands"
	"baleconnect/internal/core/application/usecases/queries"
	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/core/ports"
	"baleconnect/internal/pkg/errs"
)

// IDSource mints identifiers for records created by local dispatch.
type IDSource interface {
	NextID() string
}

// LocalDispatcher serves marketplace operations in-process against the local
// store. Each dispatch is delayed by a configurable artificial latency so the
// local mode exercises the same loading states a remote server would.
type LocalDispatcher struct {
	ids    IDSource
	delay  time.Duration
	logger *slog.Logger

	createOrder  commands.CreateOrderCommandHandler
	acceptOrder  commands.AcceptOrderCommandHandler
	assignBaler  commands.AssignBalerCommandHandler
	updateStatus commands.UpdateOrderStatusCommandHandler
	cancelOrder  commands.CancelOrderCommandHandler
	registerUser commands.RegisterUserCommandHandler
	submitRating commands.SubmitRatingCommandHandler

	auth            queries.AuthenticateUserQueryHandler
	getOrders       queries.GetOrdersQueryHandler
	getOrder        queries.GetOrderQueryHandler
	getUsers        queries.GetUsersQueryHandler
	getUserRatings  queries.GetUserRatingsQueryHandler
	getOrderRatings queries.GetOrderRatingsQueryHandler
}

// NewLocalDispatcher wires the full local operation surface over the given
// repositories.
func NewLocalDispatcher(
	ids IDSource,
	orderRepo ports.OrderRepository,
	userRepo ports.UserRepository,
	ratingRepo ports.RatingRepository,
	delay time.Duration,
	logger *slog.Logger,
) *LocalDispatcher {
	return &LocalDispatcher{
		ids:    ids,
		delay:  delay,
		logger: logger.With("component", "local-dispatcher"),

		createOrder:  commands.NewCreateOrderCommandHandler(orderRepo, userRepo),
		acceptOrder:  commands.NewAcceptOrderCommandHandler(orderRepo, userRepo),
		assignBaler:  commands.NewAssignBalerCommandHandler(orderRepo, userRepo),
		updateStatus: commands.NewUpdateOrderStatusCommandHandler(orderRepo),
		cancelOrder:  commands.NewCancelOrderCommandHandler(orderRepo),
		registerUser: commands.NewRegisterUserCommandHandler(userRepo),
		submitRating: commands.NewSubmitRatingCommandHandler(orderRepo, userRepo, ratingRepo),

		auth:            queries.NewAuthenticateUserQueryHandler(userRepo),
		getOrders:       queries.NewGetOrdersQueryHandler(orderRepo, userRepo),
		getOrder:        queries.NewGetOrderQueryHandler(orderRepo, userRepo),
		getUsers:        queries.NewGetUsersQueryHandler(userRepo),
		getUserRatings:  queries.NewGetUserRatingsQueryHandler(ratingRepo, userRepo),
		getOrderRatings: queries.NewGetOrderRatingsQueryHandler(ratingRepo, userRepo),
	}
}

// Dispatch serves one operation locally and always returns an Outcome.
func (d *LocalDispatcher) Dispatch(ctx context.Context, op string, payload []byte) Outcome {
	if d.delay > 0 {
		select {
		case <-time.After(d.delay):
		case <-ctx.Done():
			return failureOutcome(errs.NewInternalError(ctx.Err()))
		}
	}

	outcome := d.dispatch(ctx, op, payload)
	if !outcome.Success {
		d.logger.Warn("operation failed", "op", op, "status", outcome.Status, "error", outcome.Error)
	}
	return outcome
}

func (d *LocalDispatcher) dispatch(ctx context.Context, op string, payload []byte) Outcome {
	switch op {
	case OpAuth:
		return d.handleAuth(ctx, payload)
	case OpRegister:
		return d.handleRegister(ctx, payload)
	case OpCreateOrder:
		return d.handleCreateOrder(ctx, payload)
	case OpGetOrders:
		return d.handleGetOrders(ctx, payload)
	case OpGetOrder:
		return d.handleGetOrder(ctx, payload)
	case OpAcceptOrder:
		return d.handleAcceptOrder(ctx, payload)
	case OpAssignBaler:
		return d.handleAssignBaler(ctx, payload)
	case OpUpdateStatus:
		return d.handleUpdateStatus(ctx, payload)
	case OpGetUsers:
		return d.handleGetUsers(ctx, payload)
	case OpSubmitRating:
		return d.handleSubmitRating(ctx, payload)
	case OpGetUserRatings:
		return d.handleGetUserRatings(ctx, payload)
	case OpGetOrderRatings:
		return d.handleGetOrderRatings(ctx, payload)
	default:
		return Outcome{Status: http.StatusNotFound, Error: msgNotFound}
	}
}

func decode[T any](payload []byte) (T, error) {
	var req T
	if len(payload) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		var zero T
		return zero, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	return req, nil
}

func (d *LocalDispatcher) nextID() (kernel.ID, error) {
	id, err := kernel.IDFromString(d.ids.NextID())
	if err != nil {
		return kernel.ID{}, errs.NewInternalError(err)
	}
	return id, nil
}

func (d *LocalDispatcher) handleAuth(ctx context.Context, payload []byte) Outcome {
	req, err := decode[AuthRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return failureOutcome(err)
	}

	view, err := d.auth.Handle(ctx, query)
	if err != nil {
		return failureOutcome(err)
	}
	return successOutcome(http.StatusOK, view)
}

func (d *LocalDispatcher) handleRegister(ctx context.Context, payload []byte) Outcome {
	req, err := decode[RegisterRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	role, err := user.RoleFromString(req.UserType)
	if err != nil {
		return failureOutcome(err)
	}
	userID, err := d.nextID()
	if err != nil {
		return failureOutcome(err)
	}

	cmd, err := commands.NewRegisterUserCommand(userID, role, req.FullName, req.Phone, req.Email, req.Password, req.Address)
	if err != nil {
		return failureOutcome(err)
	}

	created, err := d.registerUser.Handle(ctx, cmd)
	if err != nil {
		return failureOutcome(err)
	}

	return successOutcome(http.StatusCreated, queries.UserView{
		UserID:    created.ID().String(),
		UserType:  created.Role().String(),
		FullName:  created.Name(),
		Phone:     created.Phone(),
		Email:     created.Email(),
		Address:   created.Address(),
		CreatedAt: created.CreatedAt(),
	})
}

func (d *LocalDispatcher) handleCreateOrder(ctx context.Context, payload []byte) Outcome {
	req, err := decode[CreateOrderRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	customerID, err := parseID("customer_id", req.CustomerID)
	if err != nil {
		return failureOutcome(err)
	}
	location, err := parseOptionalPoint(req.DeliveryLat, req.DeliveryLng)
	if err != nil {
		return failureOutcome(err)
	}
	pickupDate, err := parsePickupDate(req.PickupDate)
	if err != nil {
		return failureOutcome(err)
	}
	orderID, err := d.nextID()
	if err != nil {
		return failureOutcome(err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID,
		req.BaleType, req.Quantity, req.DeliveryAddress, location, pickupDate, req.Notes)
	if err != nil {
		return failureOutcome(err)
	}

	created, err := d.createOrder.Handle(ctx, cmd)
	if err != nil {
		return failureOutcome(err)
	}
	return d.orderView(ctx, created.ID(), http.StatusCreated)
}

func (d *LocalDispatcher) handleGetOrders(ctx context.Context, payload []byte) Outcome {
	req, err := decode[GetOrdersRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	customerID, err := parseOptionalID("customer_id", req.CustomerID)
	if err != nil {
		return failureOutcome(err)
	}
	farmerID, err := parseOptionalID("farmer_id", req.FarmerID)
	if err != nil {
		return failureOutcome(err)
	}
	balerID, err := parseOptionalID("baler_id", req.BalerID)
	if err != nil {
		return failureOutcome(err)
	}

	var status *order.Status
	if req.Status != "" {
		parsed, statusErr := order.StatusFromString(req.Status)
		if statusErr != nil {
			return failureOutcome(statusErr)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(customerID, farmerID, balerID, status)
	if err != nil {
		return failureOutcome(err)
	}

	views, err := d.getOrders.Handle(ctx, query)
	if err != nil {
		return failureOutcome(err)
	}
	return successOutcome(http.StatusOK, views)
}

func (d *LocalDispatcher) handleGetOrder(ctx context.Context, payload []byte) Outcome {
	req, err := decode[GetOrderRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	orderID, err := parseID("order_id", req.OrderID)
	if err != nil {
		return failureOutcome(err)
	}
	return d.orderView(ctx, orderID, http.StatusOK)
}

func (d *LocalDispatcher) handleAcceptOrder(ctx context.Context, payload []byte) Outcome {
	req, err := decode[AcceptOrderRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	orderID, err := parseID("order_id", req.OrderID)
	if err != nil {
		return failureOutcome(err)
	}
	farmerID, err := parseID("farmer_id", req.FarmerID)
	if err != nil {
		return failureOutcome(err)
	}
	location, err := parseOptionalPoint(req.FieldLat, req.FieldLng)
	if err != nil {
		return failureOutcome(err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, farmerID, req.FieldAddress, location)
	if err != nil {
		return failureOutcome(err)
	}

	if _, err := d.acceptOrder.Handle(ctx, cmd); err != nil {
		return failureOutcome(err)
	}
	return d.orderView(ctx, orderID, http.StatusOK)
}

func (d *LocalDispatcher) handleAssignBaler(ctx context.Context, payload []byte) Outcome {
	req, err := decode[AssignBalerRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	orderID, err := parseID("order_id", req.OrderID)
	if err != nil {
		return failureOutcome(err)
	}
	farmerID, err := parseID("farmer_id", req.FarmerID)
	if err != nil {
		return failureOutcome(err)
	}
	balerID, err := parseID("baler_id", req.BalerID)
	if err != nil {
		return failureOutcome(err)
	}

	cmd, err := commands.NewAssignBalerCommand(orderID, farmerID, balerID)
	if err != nil {
		return failureOutcome(err)
	}

	if _, err := d.assignBaler.Handle(ctx, cmd); err != nil {
		return failureOutcome(err)
	}
	return d.orderView(ctx, orderID, http.StatusOK)
}

func (d *LocalDispatcher) handleUpdateStatus(ctx context.Context, payload []byte) Outcome {
	req, err := decode[UpdateStatusRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	orderID, err := parseID("order_id", req.OrderID)
	if err != nil {
		return failureOutcome(err)
	}
	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return failureOutcome(err)
	}

	// Customer-initiated cancellation carries the actor and enforces
	// ownership; everything else is a plain lifecycle transition.
	if next == order.Cancelled && req.ActorID != "" {
		actorID, actorErr := parseID("actor_id", req.ActorID)
		if actorErr != nil {
			return failureOutcome(actorErr)
		}
		cmd, cmdErr := commands.NewCancelOrderCommand(orderID, actorID)
		if cmdErr != nil {
			return failureOutcome(cmdErr)
		}
		if _, handleErr := d.cancelOrder.Handle(ctx, cmd); handleErr != nil {
			return failureOutcome(handleErr)
		}
		return d.orderView(ctx, orderID, http.StatusOK)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next)
	if err != nil {
		return failureOutcome(err)
	}

	if _, err := d.updateStatus.Handle(ctx, cmd); err != nil {
		return failureOutcome(err)
	}
	return d.orderView(ctx, orderID, http.StatusOK)
}

func (d *LocalDispatcher) handleGetUsers(ctx context.Context, payload []byte) Outcome {
	req, err := decode[GetUsersRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	var role *user.Role
	if req.UserType != "" {
		parsed, roleErr := user.RoleFromString(req.UserType)
		if roleErr != nil {
			return failureOutcome(roleErr)
		}
		role = &parsed
	}

	query, err := queries.NewGetUsersQuery(role)
	if err != nil {
		return failureOutcome(err)
	}

	views, err := d.getUsers.Handle(ctx, query)
	if err != nil {
		return failureOutcome(err)
	}
	return successOutcome(http.StatusOK, views)
}

func (d *LocalDispatcher) handleSubmitRating(ctx context.Context, payload []byte) Outcome {
	req, err := decode[SubmitRatingRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	orderID, err := parseID("order_id", req.OrderID)
	if err != nil {
		return failureOutcome(err)
	}
	raterID, err := parseID("rater_id", req.RaterID)
	if err != nil {
		return failureOutcome(err)
	}
	rateeID, err := parseID("ratee_id", req.RateeID)
	if err != nil {
		return failureOutcome(err)
	}
	ratingID, err := d.nextID()
	if err != nil {
		return failureOutcome(err)
	}

	cmd, err := commands.NewSubmitRatingCommand(ratingID, orderID, raterID, rateeID, req.Score, req.Comment)
	if err != nil {
		return failureOutcome(err)
	}

	record, err := d.submitRating.Handle(ctx, cmd)
	if err != nil {
		return failureOutcome(err)
	}

	return successOutcome(http.StatusCreated, queries.RatingView{
		RatingID:  record.ID().String(),
		OrderID:   record.OrderID().String(),
		RaterID:   record.RaterID().String(),
		RateeID:   record.RateeID().String(),
		Score:     record.Score(),
		Comment:   record.Comment(),
		CreatedAt: record.CreatedAt(),
	})
}

func (d *LocalDispatcher) handleGetUserRatings(ctx context.Context, payload []byte) Outcome {
	req, err := decode[GetUserRatingsRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return failureOutcome(err)
	}

	query, err := queries.NewGetUserRatingsQuery(userID)
	if err != nil {
		return failureOutcome(err)
	}

	view, err := d.getUserRatings.Handle(ctx, query)
	if err != nil {
		return failureOutcome(err)
	}
	return successOutcome(http.StatusOK, view)
}

func (d *LocalDispatcher) handleGetOrderRatings(ctx context.Context, payload []byte) Outcome {
	req, err := decode[GetOrderRatingsRequest](payload)
	if err != nil {
		return failureOutcome(err)
	}

	orderID, err := parseID("order_id", req.OrderID)
	if err != nil {
		return failureOutcome(err)
	}

	query, err := queries.NewGetOrderRatingsQuery(orderID)
	if err != nil {
		return failureOutcome(err)
	}

	views, err := d.getOrderRatings.Handle(ctx, query)
	if err != nil {
		return failureOutcome(err)
	}
	return successOutcome(http.StatusOK, views)
}

// orderView responds with the enriched projection of one order. Mutating
// operations reuse it so every order response carries the same shape.
func (d *LocalDispatcher) orderView(ctx context.Context, orderID kernel.ID, status int) Outcome {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return failureOutcome(err)
	}

	view, err := d.getOrder.Handle(ctx, query)
	if err != nil {
		return failureOutcome(err)
	}
	return successOutcome(status, view)
}
