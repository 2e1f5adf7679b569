package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"estatex/config"
	deliverycontext "estatex/internal/delivery/context"
	"estatex/internal/domain/constants"
	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/domain/service"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type propertyService struct {
	propertyRepo    repository.PropertyRepository
	cache           service.Cache
	publisher       service.EventPublisher
	defaultCategory entity.Category
	nearbyRadius    float64
	listingTTL      time.Duration
	now             func() time.Time
	logger          *slog.Logger
}

// PropertyServiceParams holds dependencies for PropertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	Cache        service.Cache
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPropertyService creates the listing use cases.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	srv := &propertyService{
		propertyRepo:    params.PropertyRepo,
		cache:           params.Cache,
		publisher:       params.Publisher,
		defaultCategory: entity.CategoryResidential,
		nearbyRadius:    5000,
		now:             time.Now,
		logger:          params.Logger,
	}
	if cfg := params.Config; cfg != nil && cfg.Property != nil {
		if cfg.Property.DefaultCategory != "" {
			srv.defaultCategory = entity.Category(cfg.Property.DefaultCategory)
		}
		if cfg.Property.NearbyRadius > 0 {
			srv.nearbyRadius = cfg.Property.NearbyRadius
		}
		srv.listingTTL = cfg.Property.ListingTTL
	}

	return srv
}

func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new pending listing owned by the actor.
func (srv *propertyService) Create(ctx context.Context, actor *entity.User, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	property := &entity.Property{
		OwnerID:           actor.ID,
		Owner:             actor.Summary(),
		Category:          input.Category,
		Status:            entity.ModerationPending,
		BuildingOrSociety: input.BuildingOrSociety,
		RoadOrLocation:    input.RoadOrLocation,
		Station:           input.Station,
		SubLocation:       input.SubLocation,
		PropertyType:      input.PropertyType,
		IsCosmo:           input.IsCosmo,
		Images:            input.Images,
		Amenities:         input.Amenities,
		Location:          input.Location,
	}

	if err := buildDetails(property, input.Type, input.PropertyAttributes); err != nil {
		return nil, err
	}

	if err := srv.propertyRepo.Create(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to create property")
	}

	srv.log(ctx).Info("Property submitted",
		slog.String("property_id", property.ID.String()),
		slog.String("owner_id", actor.ID.String()),
		slog.String("type", string(property.Type())),
	)

	return property, nil
}

// List serves approved listings only, from cache when possible.
func (srv *propertyService) List(ctx context.Context, filter entity.PropertyFilter) ([]*entity.Property, error) {
	if filter.Category == "" {
		filter.Category = srv.defaultCategory
	}
	filter.Status = entity.ModerationApproved
	filter.OwnerID = nil

	key := service.QueryCacheKey(constants.CachePrefixListings, filter.Params())

	var cached []*entity.Property
	found, err := srv.cache.Get(ctx, key, &cached)
	if err != nil {
		srv.log(ctx).Warn("Listing cache read failed", slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	properties, err := srv.propertyRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	if srv.listingTTL > 0 {
		if err := srv.cache.Set(ctx, key, properties, srv.listingTTL); err != nil {
			srv.log(ctx).Warn("Listing cache write failed", slog.Any("error", err))
		}
	}

	return properties, nil
}

func (srv *propertyService) ListMine(ctx context.Context, actor *entity.User) ([]*entity.Property, error) {
	ownerID := actor.ID
	properties, err := srv.propertyRepo.Find(ctx, entity.PropertyFilter{OwnerID: &ownerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	return properties, nil
}

func (srv *propertyService) ListPending(ctx context.Context) ([]*entity.Property, error) {
	properties, err := srv.propertyRepo.Find(ctx, entity.PropertyFilter{Status: entity.ModerationPending})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending properties")
	}

	return properties, nil
}

// Get hides unapproved listings from everyone but their owner and admins.
func (srv *propertyService) Get(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Property, error) {
	property, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !property.IsVisibleTo(actor) {
		return nil, domainerrors.ErrPropertyNotFound
	}

	return property, nil
}

// Update merges the input into the stored listing and rebuilds its details.
// A broker's edit always sends the listing back to moderation.
func (srv *propertyService) Update(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.UpdatePropertyInput) (*entity.Property, error) {
	property, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !property.CanBeModifiedBy(actor) {
		return nil, domainerrors.ErrForbidden.WithMessage("Not authorized to update this property")
	}

	assign(&property.Category, input.Category)
	assign(&property.BuildingOrSociety, input.BuildingOrSociety)
	assign(&property.RoadOrLocation, input.RoadOrLocation)
	assign(&property.Station, input.Station)
	assign(&property.SubLocation, input.SubLocation)
	assign(&property.PropertyType, input.PropertyType)
	assign(&property.IsCosmo, input.IsCosmo)
	assign(&property.Images, input.Images)
	assign(&property.Amenities, input.Amenities)
	assign(&property.Location, input.Location)

	txType := property.Type()
	var attrs entity.PropertyAttributes
	if property.Details != nil {
		attrs = property.Details.Attributes()
	}
	if input.Type != nil && *input.Type != txType {
		txType = *input.Type
		attrs = entity.PropertyAttributes{}
	}

	if err := buildDetails(property, txType, attrs.Merge(input.PropertyAttributesPatch)); err != nil {
		return nil, err
	}

	switch {
	case !actor.IsAdmin():
		property.Status = entity.ModerationPending
	case input.Status != nil:
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid status")
		}
		property.Status = *input.Status
	}

	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to update property")
	}

	srv.invalidateListings(ctx)

	return property, nil
}

func (srv *propertyService) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	property, err := srv.find(ctx, id)
	if err != nil {
		return err
	}

	if !property.CanBeModifiedBy(actor) {
		return domainerrors.ErrForbidden.WithMessage("Not authorized to delete this property")
	}

	if err := srv.propertyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}

		return errors.Wrap(err, "failed to delete property")
	}

	srv.invalidateListings(ctx)

	return nil
}

// Review records an admin decision and announces it.
func (srv *propertyService) Review(ctx context.Context, reviewer *entity.User, id uuid.UUID, input *usecase.ReviewInput) (*entity.Property, error) {
	if !reviewer.IsAdmin() {
		return nil, domainerrors.ErrAdminRequired
	}
	if !input.Status.IsReviewOutcome() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid status")
	}

	property, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	reviewedAt := srv.now()
	if err := property.ApplyReview(reviewer.ID, input.Status, input.Remarks, reviewedAt); err != nil {
		return nil, validationFailed(err)
	}

	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to save review")
	}

	srv.invalidateListings(ctx)

	event := &entity.ListingEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		PropertyID: property.ID,
		OwnerID:    property.OwnerID,
		Status:     property.Status,
		ReviewedBy: reviewer.ID,
		Remarks:    input.Remarks,
		OccurredAt: reviewedAt,
	}
	if err := srv.publisher.PublishListingEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish listing event",
			slog.String("property_id", property.ID.String()),
			slog.Any("error", err),
		)
	}

	return property, nil
}

// Nearby returns approved listings within the radius, nearest first.
func (srv *propertyService) Nearby(ctx context.Context, input *usecase.NearbyInput) ([]*entity.Property, error) {
	if !input.Center.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	radius := input.Radius
	if radius <= 0 {
		radius = srv.nearbyRadius
	}

	properties, err := srv.propertyRepo.FindNearby(ctx, repository.NearbyQuery{
		Center: input.Center,
		Radius: radius,
		Status: entity.ModerationApproved,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby properties")
	}

	return properties, nil
}

func (srv *propertyService) find(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	property, err := srv.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	return property, nil
}

func (srv *propertyService) invalidateListings(ctx context.Context) {
	if err := srv.cache.DeletePrefix(ctx, constants.CachePrefixListings); err != nil {
		srv.log(ctx).Warn("Listing cache invalidation failed", slog.Any("error", err))
	}
}

// buildDetails attaches the type variant and validates the whole listing,
// reporting every problem at once.
func buildDetails(property *entity.Property, txType entity.TransactionType, attrs entity.PropertyAttributes) error {
	var problems []string

	details, err := entity.NewPropertyDetails(txType, attrs)
	if err != nil {
		var verr *entity.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		problems = append(problems, verr.Problems...)
	}
	property.Details = details

	if err := property.Validate(); err != nil {
		var verr *entity.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for _, problem := range verr.Problems {
			if !slices.Contains(problems, problem) {
				problems = append(problems, problem)
			}
		}
	}

	if len(problems) > 0 {
		return validationFailed(&entity.ValidationError{Problems: problems})
	}

	return nil
}

// validationFailed surfaces an entity validation error as a 400 naming the problems.
func validationFailed(err error) error {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return domainerrors.ErrValidationFailed.WithMessage(verr.Error())
	}

	return err
}
