package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/spec-kit/isp-registry/internal/domain"
	"github.com/spec-kit/isp-registry/internal/events"
	"github.com/spec-kit/isp-registry/internal/repository"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

const pgForeignKeyViolation = "23503"

// mapDeleteError converts storage errors from deletes into domain errors.
// Foreign key RESTRICT violations become conflicts.
func mapDeleteError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, nil)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return apperrors.NewConflict(resource+" is referenced by other records", nil)
	}
	return err
}

// ClientService manages clients, client types, and the services
// subscribed by clients.
type ClientService struct {
	clients      repository.ClientRepository
	clientTypes  repository.ClientTypeRepository
	services     repository.ServiceRepository
	serviceTypes repository.ServiceTypeRepository
	pops         repository.PopRepository
	resolver     *SearchResolver
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// NewClientService builds the service.
func NewClientService(
	clients repository.ClientRepository,
	clientTypes repository.ClientTypeRepository,
	services repository.ServiceRepository,
	serviceTypes repository.ServiceTypeRepository,
	pops repository.PopRepository,
	resolver *SearchResolver,
	dispatcher events.Dispatcher,
	logger *zap.Logger,
) *ClientService {
	return &ClientService{
		clients:      clients,
		clientTypes:  clientTypes,
		services:     services,
		serviceTypes: serviceTypes,
		pops:         pops,
		resolver:     resolver,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

func (s *ClientService) publish(ctx context.Context, eventType events.EventType, entity string, id int64) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.NewRecordEvent(eventType, entity, id))
}

// AddClientType creates a client type; duplicate names are rejected.
func (s *ClientService) AddClientType(ctx context.Context, clientType *domain.ClientType) error {
	if _, err := s.clientTypes.GetByName(ctx, clientType.Name); err == nil {
		return apperrors.NewValidationError("Client type exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if err := s.clientTypes.Create(ctx, clientType); err != nil {
		return err
	}
	s.publish(ctx, events.EventRecordCreated, "client_type", clientType.ID)
	return nil
}

// DeleteClientType removes a client type unless clients still reference it.
func (s *ClientService) DeleteClientType(ctx context.Context, id int64) error {
	if _, err := s.clientTypes.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Client type", nil)
		}
		return err
	}
	if err := s.clientTypes.Delete(ctx, id); err != nil {
		return mapDeleteError(err, "Client type")
	}
	s.publish(ctx, events.EventRecordDeleted, "client_type", id)
	return nil
}

// ListClientTypes returns client types matching the filter.
func (s *ClientService) ListClientTypes(ctx context.Context, filter repository.ClientTypeFilter) ([]domain.ClientType, error) {
	return s.clientTypes.List(ctx, filter)
}

// AddClient creates a client after duplicate and type checks.
func (s *ClientService) AddClient(ctx context.Context, client *domain.Client) error {
	if _, err := s.clients.GetByName(ctx, client.Name); err == nil {
		return apperrors.NewValidationError("Client exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if _, err := s.clientTypes.GetByID(ctx, client.ClientTypeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("Client type does not exist", nil)
		}
		return err
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return err
	}
	s.publish(ctx, events.EventRecordCreated, "client", client.ID)
	return nil
}

// ModifyClient updates an existing client.
func (s *ClientService) ModifyClient(ctx context.Context, client *domain.Client) error {
	if _, err := s.clients.GetByID(ctx, client.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Client", nil)
		}
		return err
	}
	if _, err := s.clientTypes.GetByID(ctx, client.ClientTypeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Client type", nil)
		}
		return err
	}
	if err := s.clients.Update(ctx, client); err != nil {
		return err
	}
	s.publish(ctx, events.EventRecordUpdated, "client", client.ID)
	return nil
}

// DeleteClient removes a client.
func (s *ClientService) DeleteClient(ctx context.Context, id int64) error {
	if _, err := s.clients.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Client", nil)
		}
		return err
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		return mapDeleteError(err, "Client")
	}
	s.publish(ctx, events.EventRecordDeleted, "client", id)
	return nil
}

// ListClients returns clients matching the filter.
func (s *ClientService) ListClients(ctx context.Context, filter repository.ClientFilter) ([]domain.Client, error) {
	return s.clients.List(ctx, filter)
}

// AddServiceType creates a service type; duplicate names are rejected.
func (s *ClientService) AddServiceType(ctx context.Context, serviceType *domain.ServiceType) error {
	if _, err := s.serviceTypes.GetByName(ctx, serviceType.Name); err == nil {
		return apperrors.NewValidationError("Service type exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if err := s.serviceTypes.Create(ctx, serviceType); err != nil {
		return err
	}
	s.publish(ctx, events.EventRecordCreated, "service_type", serviceType.ID)
	return nil
}

// DeleteServiceType removes a service type unless services still reference it.
func (s *ClientService) DeleteServiceType(ctx context.Context, id int64) error {
	if _, err := s.serviceTypes.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Service type", nil)
		}
		return err
	}
	if err := s.serviceTypes.Delete(ctx, id); err != nil {
		return mapDeleteError(err, "Service type")
	}
	s.publish(ctx, events.EventRecordDeleted, "service_type", id)
	return nil
}

// ListServiceTypes returns service types matching the filter.
func (s *ClientService) ListServiceTypes(ctx context.Context, filter repository.ServiceTypeFilter) ([]domain.ServiceType, error) {
	return s.serviceTypes.List(ctx, filter)
}

// AddService creates a service after duplicate and reference checks.
func (s *ClientService) AddService(ctx context.Context, service *domain.Service) error {
	if exists, err := s.clients.Exists(ctx, service.ClientID); err != nil {
		return err
	} else if !exists {
		return apperrors.NewNotFound("Client", nil)
	}
	if _, err := s.serviceTypes.GetByID(ctx, service.ServiceTypeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Service type", nil)
		}
		return err
	}
	if _, err := s.pops.GetByID(ctx, service.PopID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Pop", nil)
		}
		return err
	}
	if _, err := s.services.GetByProperties(ctx, service); err == nil {
		return apperrors.NewValidationError("Service exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if err := s.services.Create(ctx, service); err != nil {
		return err
	}
	s.publish(ctx, events.EventRecordCreated, "service", service.ID)
	return nil
}

// ModifyService updates an existing service.
func (s *ClientService) ModifyService(ctx context.Context, service *domain.Service) error {
	if _, err := s.services.GetByID(ctx, service.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Service", nil)
		}
		return err
	}
	if err := s.services.Update(ctx, service); err != nil {
		return err
	}
	s.publish(ctx, events.EventRecordUpdated, "service", service.ID)
	return nil
}

// DeleteService removes a service.
func (s *ClientService) DeleteService(ctx context.Context, id int64) error {
	if _, err := s.services.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Service", nil)
		}
		return err
	}
	if err := s.services.Delete(ctx, id); err != nil {
		return mapDeleteError(err, "Service")
	}
	s.publish(ctx, events.EventRecordDeleted, "service", id)
	return nil
}

// SearchServices resolves the raw filter set and queries services.
func (s *ClientService) SearchServices(ctx context.Context, search ServiceSearch) ([]domain.Service, error) {
	filter, err := s.resolver.ResolveServiceSearch(ctx, search)
	if err != nil {
		return nil, err
	}
	return s.services.List(ctx, filter)
}
