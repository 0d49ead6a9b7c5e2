package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"contractor_takeoff/internal/domain/calculator"
	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/domain/lookup"
	"contractor_takeoff/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTakeoffNotFound          = errors.New("takeoff not found")
	ErrInvalidTakeoffID         = errors.New("invalid takeoff id")
	ErrInvalidCustomerID        = errors.New("invalid customer_id")
	ErrInvalidElevations        = errors.New("invalid elevations")
	ErrProductNotSelected       = errors.New("product not selected")
	ErrHardwareItemNotFound     = errors.New("hardware item not found")
	ErrInvalidOverrideField     = errors.New("invalid override field")
	ErrCatalogNotConfigured     = errors.New("hardware catalog not configured")
	ErrTakeoffRepoNotConfigured = errors.New("takeoff repository not configured")
)

// HardwareOverride is a manual override sent along with a takeoff save. Nil
// fields leave the current value untouched.
type HardwareOverride struct {
	ItemID   string
	Quantity *float64
	Price    *float64
}

// TakeoffCommand is the raw takeoff input coming from the surrounding application.
type TakeoffCommand struct {
	ID                 string
	CustomerID         string
	ProjectID          string
	Trade              string
	InstallationType   string
	Elevations         []entities.ElevationMeasurement
	Selection          entities.ManufacturerSelection
	GenericHardwareIDs []string
	HardwareOverrides  []HardwareOverride
}

//go:generate mockgen -source=takeoff_usecase.go -destination=../adapter/http/handlers/mocks/mock_takeoff_usecase.go -package=mocks

// ITakeoffUseCase is the Takeoff Assembly: it feeds raw measurements to the
// calculator engine and persists the assembled record.
type ITakeoffUseCase interface {
	Draft(ctx context.Context, trade, customerID, projectID string) (entities.Takeoff, error)
	Preview(ctx context.Context, cmd TakeoffCommand) (entities.Takeoff, error)
	Save(ctx context.Context, cmd TakeoffCommand) (entities.Takeoff, error)
	GetByID(ctx context.Context, id string) (entities.Takeoff, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Takeoff, error)
	Delete(ctx context.Context, id string) error
	UpdateHardwareOverride(ctx context.Context, takeoffID, itemID string, field entities.OverrideField, value *float64) (entities.Takeoff, error)
}

type TakeoffUseCase struct {
	repo    interfaces.ITakeoffRepository
	catalog interfaces.IHardwareCatalogRepository
	tables  lookup.Tables
	logger  *zap.Logger
	now     func() time.Time
}

var _ ITakeoffUseCase = (*TakeoffUseCase)(nil)

func NewTakeoffUseCase(repo interfaces.ITakeoffRepository, catalog interfaces.IHardwareCatalogRepository, tables lookup.Tables, logger *zap.Logger) *TakeoffUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TakeoffUseCase{
		repo:    repo,
		catalog: catalog,
		tables:  tables,
		logger:  logger.Named("takeoff.usecase"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Draft starts a takeoff with one empty measurement per elevation of the trade.
// Nothing is persisted.
func (u *TakeoffUseCase) Draft(_ context.Context, trade, customerID, projectID string) (entities.Takeoff, error) {
	engine, err := u.engine(trade)
	if err != nil {
		return entities.Takeoff{}, err
	}
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Takeoff{}, ErrInvalidCustomerID
	}

	t := engine.Assemble(calculator.AssemblyInput{
		Elevations: entities.NewElevationSlots(engine.Table().Elevations),
	})
	t.CustomerID = customerID
	t.ProjectID = strings.TrimSpace(projectID)
	return t, nil
}

// Preview assembles a takeoff without persisting it. A missing product selection
// is allowed and prices at zero.
func (u *TakeoffUseCase) Preview(ctx context.Context, cmd TakeoffCommand) (entities.Takeoff, error) {
	engine, err := u.engine(cmd.Trade)
	if err != nil {
		return entities.Takeoff{}, err
	}
	if err := cmd.Selection.Validate(); err != nil {
		return entities.Takeoff{}, err
	}

	t, err := u.assemble(ctx, engine, cmd, nil)
	if err != nil {
		return entities.Takeoff{}, err
	}
	t.ID = strings.TrimSpace(cmd.ID)
	t.CustomerID = strings.TrimSpace(cmd.CustomerID)
	t.ProjectID = strings.TrimSpace(cmd.ProjectID)
	return t, nil
}

// Save creates the takeoff on first save and updates it in place afterwards.
// Manual hardware overrides of the stored takeoff survive the recomputation.
func (u *TakeoffUseCase) Save(ctx context.Context, cmd TakeoffCommand) (entities.Takeoff, error) {
	id := strings.TrimSpace(cmd.ID)
	log := u.logger.With(zap.String("takeoff_id", id), zap.String("trade", cmd.Trade))
	log.Info("save start")

	if u.repo == nil {
		log.Error("takeoff repository not configured")
		return entities.Takeoff{}, ErrTakeoffRepoNotConfigured
	}
	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		return entities.Takeoff{}, ErrInvalidCustomerID
	}
	engine, err := u.engine(cmd.Trade)
	if err != nil {
		return entities.Takeoff{}, err
	}
	if err := cmd.Selection.Validate(); err != nil {
		return entities.Takeoff{}, err
	}
	if !cmd.Selection.HasProduct() {
		log.Info("save blocked: product not selected")
		return entities.Takeoff{}, ErrProductNotSelected
	}

	var existing entities.Takeoff
	if id != "" {
		existing, err = u.repo.GetByID(ctx, id)
		if err != nil {
			log.Error("failed loading takeoff", zap.Error(err))
			return entities.Takeoff{}, err
		}
		if existing.ID == "" {
			log.Info("takeoff not found")
			return entities.Takeoff{}, ErrTakeoffNotFound
		}
	}

	t, err := u.assemble(ctx, engine, cmd, existing.Hardware)
	if err != nil {
		log.Error("failed assembling takeoff", zap.Error(err))
		return entities.Takeoff{}, err
	}
	t.CustomerID = customerID
	t.ProjectID = strings.TrimSpace(cmd.ProjectID)
	now := u.now()
	t.UpdatedAt = now

	var saved entities.Takeoff
	if existing.ID == "" {
		t.ID = uuid.NewString()
		t.CreatedAt = now
		saved, err = u.repo.Create(ctx, t)
	} else {
		t.ID = existing.ID
		t.CreatedAt = existing.CreatedAt
		saved, err = u.repo.Update(ctx, t)
	}
	if err != nil {
		log.Error("takeoff repository save failed", zap.Error(err))
		return entities.Takeoff{}, err
	}
	if saved.ID == "" {
		return entities.Takeoff{}, ErrTakeoffNotFound
	}
	log.Info("save success",
		zap.String("saved_id", saved.ID),
		zap.Float64("total_area", saved.Totals.TotalArea),
		zap.Float64("grand_total", saved.GrandTotal))
	return saved, nil
}

func (u *TakeoffUseCase) GetByID(ctx context.Context, id string) (entities.Takeoff, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Takeoff{}, ErrInvalidTakeoffID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Takeoff{}, err
	}
	if t.ID == "" {
		return entities.Takeoff{}, ErrTakeoffNotFound
	}
	return t, nil
}

func (u *TakeoffUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Takeoff, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

// Delete discards a takeoff.
func (u *TakeoffUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTakeoffID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		u.logger.Error("delete failed", zap.String("takeoff_id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrTakeoffNotFound
	}
	u.logger.Info("takeoff discarded", zap.String("takeoff_id", id))
	return nil
}

// UpdateHardwareOverride sets or clears (nil value) one manual override of a
// hardware line and persists the repriced takeoff.
func (u *TakeoffUseCase) UpdateHardwareOverride(ctx context.Context, takeoffID, itemID string, field entities.OverrideField, value *float64) (entities.Takeoff, error) {
	takeoffID = strings.TrimSpace(takeoffID)
	itemID = strings.TrimSpace(itemID)
	if takeoffID == "" {
		return entities.Takeoff{}, ErrInvalidTakeoffID
	}
	if itemID == "" {
		return entities.Takeoff{}, ErrHardwareItemNotFound
	}
	if !field.Valid() {
		return entities.Takeoff{}, ErrInvalidOverrideField
	}

	t, err := u.GetByID(ctx, takeoffID)
	if err != nil {
		return entities.Takeoff{}, err
	}
	if !hasHardwareLine(t.Hardware, itemID) {
		return entities.Takeoff{}, ErrHardwareItemNotFound
	}
	engine, err := u.engine(string(t.Trade))
	if err != nil {
		return entities.Takeoff{}, err
	}

	t.Hardware = calculator.UpdateOverride(t.Hardware, itemID, field, value)
	t = engine.Reprice(t)
	t.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		u.logger.Error("override update failed",
			zap.String("takeoff_id", takeoffID),
			zap.String("item_id", itemID),
			zap.Error(err))
		return entities.Takeoff{}, err
	}
	if updated.ID == "" {
		return entities.Takeoff{}, ErrTakeoffNotFound
	}
	u.logger.Info("override updated",
		zap.String("takeoff_id", takeoffID),
		zap.String("item_id", itemID),
		zap.String("field", string(field)),
		zap.Bool("cleared", value == nil))
	return updated, nil
}

func (u *TakeoffUseCase) engine(rawTrade string) (*calculator.Engine, error) {
	trade, err := entities.ParseTrade(rawTrade)
	if err != nil {
		return nil, err
	}
	table, err := u.tables.Trade(trade)
	if err != nil {
		return nil, entities.ErrUnknownTrade
	}
	return calculator.NewEngine(table, u.logger), nil
}

func (u *TakeoffUseCase) assemble(ctx context.Context, engine *calculator.Engine, cmd TakeoffCommand, prior []entities.HardwareCalculation) (entities.Takeoff, error) {
	elevations, err := normalizeElevations(engine.Table().Elevations, cmd.Elevations)
	if err != nil {
		return entities.Takeoff{}, err
	}
	items, err := u.resolveHardware(ctx, engine.Table().Trade, cmd.Selection, cmd.GenericHardwareIDs)
	if err != nil {
		return entities.Takeoff{}, err
	}

	t := engine.Assemble(calculator.AssemblyInput{
		Elevations:       elevations,
		Selection:        cmd.Selection,
		InstallationType: strings.TrimSpace(cmd.InstallationType),
		Hardware:         items,
		PriorHardware:    prior,
	})
	if len(cmd.HardwareOverrides) == 0 {
		return t, nil
	}
	for _, o := range cmd.HardwareOverrides {
		if o.Quantity != nil {
			t.Hardware = calculator.UpdateOverride(t.Hardware, o.ItemID, entities.OverrideQuantity, o.Quantity)
		}
		if o.Price != nil {
			t.Hardware = calculator.UpdateOverride(t.Hardware, o.ItemID, entities.OverridePrice, o.Price)
		}
	}
	return engine.Reprice(t), nil
}

// resolveHardware picks the catalog items bundled with the selected manufacturer
// plus the items the operator added by id.
func (u *TakeoffUseCase) resolveHardware(ctx context.Context, trade entities.Trade, sel entities.ManufacturerSelection, genericIDs []string) ([]entities.HardwareItem, error) {
	if sel.ManufacturerID == "" && len(genericIDs) == 0 {
		return nil, nil
	}
	if u.catalog == nil {
		return nil, ErrCatalogNotConfigured
	}

	items, err := u.catalog.ListByCategory(ctx, trade)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entities.HardwareItem, len(items))
	var bundled []entities.HardwareItem
	for _, it := range items {
		byID[it.ID] = it
		if sel.ManufacturerID != "" && it.ManufacturerID == sel.ManufacturerID {
			bundled = append(bundled, it)
		}
	}

	generic := make([]entities.HardwareItem, 0, len(genericIDs))
	for _, raw := range genericIDs {
		id := strings.TrimSpace(raw)
		it, ok := byID[id]
		if !ok {
			u.logger.Info("generic hardware item not in catalog", zap.String("item_id", id), zap.String("trade", string(trade)))
			return nil, ErrHardwareItemNotFound
		}
		generic = append(generic, it)
	}
	return calculator.MergeHardwareItems(bundled, generic), nil
}

// normalizeElevations lays the received measurements over the fixed elevation
// list of the trade. Missing elevations become empty slots.
func normalizeElevations(defs []entities.ElevationDefinition, in []entities.ElevationMeasurement) ([]entities.ElevationMeasurement, error) {
	byID := make(map[string]entities.ElevationMeasurement, len(in))
	for _, el := range in {
		el.ElevationID = strings.TrimSpace(el.ElevationID)
		if _, dup := byID[el.ElevationID]; dup {
			return nil, ErrInvalidElevations
		}
		byID[el.ElevationID] = el
	}

	out := entities.NewElevationSlots(defs)
	for i := range out {
		if el, ok := byID[out[i].ElevationID]; ok {
			out[i] = el
			delete(byID, el.ElevationID)
		}
	}
	if len(byID) > 0 {
		return nil, ErrInvalidElevations
	}
	return out, nil
}

func hasHardwareLine(calcs []entities.HardwareCalculation, itemID string) bool {
	for _, c := range calcs {
		if c.ItemID == itemID {
			return true
		}
	}
	return false
}
