package hubspot

//go:generate go run go.uber.org/mock/mockgen -source=./hubspot.go -destination=./mocks/hubspot_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"pmsbridge/config"
	"pmsbridge/infras/metrics"
	"pmsbridge/infras/otel"
	"pmsbridge/infras/remote"
	"pmsbridge/shared/constant"
)

const (
	pathDeals             = "/objects/deals"
	pathDealSearch        = "/objects/deals/search"
	pathLineItems         = "/objects/line_items"
	pathLineItemsArchive  = "/objects/line_items/batch/archive"
	dealLineItemsTemplate = "/objects/deals/%s/associations/line_items"
	associationPageLimit  = 500
	archiveBatchLimit     = 100

	// AssociationLineItemToDeal is the HUBSPOT_DEFINED line_item→deal association type.
	AssociationLineItemToDeal = 20
	associationCategory       = "HUBSPOT_DEFINED"
)

type Properties map[string]any

// Client is the subset of the HubSpot CRM v3 objects API used for deals and line items.
type Client interface {
	// SearchDeal returns the first deal whose property equals value, or "" when none matches.
	SearchDeal(ctx context.Context, property, value string) (string, error)
	CreateDeal(ctx context.Context, properties Properties) (string, error)
	UpdateDeal(ctx context.Context, dealID string, properties Properties) error
	ListLineItemIDs(ctx context.Context, dealID string) ([]string, error)
	ArchiveLineItems(ctx context.Context, ids []string) error
	CreateLineItem(ctx context.Context, dealID string, properties Properties) (string, error)
}

type clientImpl struct {
	remote *remote.Client
}

func New(cfg *config.Config, ot otel.Otel, m *metrics.Metrics) Client {
	return NewClient(remote.Options{
		Service: constant.ServiceHubSpot,
		BaseURL: cfg.HubSpot.BaseURL,
		Timeout: time.Duration(cfg.HubSpot.TimeoutSeconds) * time.Second,
		Headers: StaticBearer(cfg.HubSpot.Token),
	}, ot, m)
}

func NewClient(opts remote.Options, ot otel.Otel, m *metrics.Metrics) Client {
	return &clientImpl{remote: remote.New(opts, ot, m)}
}

// StaticBearer authenticates with a private app token.
func StaticBearer(token string) remote.HeaderProvider {
	return func(context.Context) (http.Header, error) {
		header := http.Header{}
		header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)

		return header, nil
	}
}

type object struct {
	ID string `json:"id"`
}

type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
	Limit        int           `json:"limit"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type results struct {
	Results []object `json:"results"`
	Paging  *paging  `json:"paging,omitempty"`
}

type paging struct {
	Next *struct {
		After string `json:"after"`
	} `json:"next,omitempty"`
}

func (r results) nextCursor() string {
	if r.Paging == nil || r.Paging.Next == nil {
		return constant.Empty
	}

	return r.Paging.Next.After
}

type objectInput struct {
	Properties   Properties    `json:"properties"`
	Associations []association `json:"associations,omitempty"`
}

type association struct {
	To    object            `json:"to"`
	Types []associationType `json:"types"`
}

type associationType struct {
	AssociationCategory string `json:"associationCategory"`
	AssociationTypeID   int    `json:"associationTypeId"`
}

type batchInput struct {
	Inputs []object `json:"inputs"`
}

func (c *clientImpl) SearchDeal(ctx context.Context, property, value string) (string, error) {
	payload := searchRequest{
		FilterGroups: []filterGroup{{Filters: []filter{{PropertyName: property, Operator: "EQ", Value: value}}}},
		Limit:        1,
	}

	var found results
	if err := c.remote.Invoke(ctx, http.MethodPost, pathDealSearch, payload, &found); err != nil {
		return constant.Empty, fmt.Errorf("failed to search hubspot deal: %w", err)
	}

	if len(found.Results) == 0 {
		return constant.Empty, nil
	}

	return found.Results[0].ID, nil
}

func (c *clientImpl) CreateDeal(ctx context.Context, properties Properties) (string, error) {
	var created object
	if err := c.remote.Invoke(ctx, http.MethodPost, pathDeals, objectInput{Properties: properties}, &created); err != nil {
		return constant.Empty, fmt.Errorf("failed to create hubspot deal: %w", err)
	}

	if created.ID == "" {
		return constant.Empty, &remote.Error{Service: constant.ServiceHubSpot, Kind: remote.KindRemote, Message: "deal created without id"}
	}

	return created.ID, nil
}

func (c *clientImpl) UpdateDeal(ctx context.Context, dealID string, properties Properties) error {
	endpoint := pathDeals + "/" + url.PathEscape(dealID)

	if err := c.remote.Invoke(ctx, http.MethodPatch, endpoint, objectInput{Properties: properties}, nil); err != nil {
		return fmt.Errorf("failed to update hubspot deal %s: %w", dealID, err)
	}

	return nil
}

// ListLineItemIDs follows the association cursor until the last page. A missing association
// list is empty.
func (c *clientImpl) ListLineItemIDs(ctx context.Context, dealID string) ([]string, error) {
	base := fmt.Sprintf(dealLineItemsTemplate, url.PathEscape(dealID))

	var (
		ids   []string
		after string
	)

	for {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(associationPageLimit))
		if after != "" {
			query.Set("after", after)
		}

		var page results

		err := c.remote.Invoke(ctx, http.MethodGet, base+"?"+query.Encode(), nil, &page)
		if remote.IsNotFound(err) && after == "" {
			return nil, nil
		}

		if err != nil {
			return nil, fmt.Errorf("failed to list hubspot line items of deal %s: %w", dealID, err)
		}

		for _, r := range page.Results {
			ids = append(ids, r.ID)
		}

		next := page.nextCursor()
		if next == "" || next == after {
			return ids, nil
		}

		after = next
	}
}

// ArchiveLineItems sends ids in batches of at most 100, the batch API limit.
func (c *clientImpl) ArchiveLineItems(ctx context.Context, ids []string) error {
	for batch := range slices.Chunk(ids, archiveBatchLimit) {
		inputs := make([]object, 0, len(batch))
		for _, id := range batch {
			inputs = append(inputs, object{ID: id})
		}

		if err := c.remote.Invoke(ctx, http.MethodPost, pathLineItemsArchive, batchInput{Inputs: inputs}, nil); err != nil {
			return fmt.Errorf("failed to archive hubspot line items: %w", err)
		}
	}

	return nil
}

func (c *clientImpl) CreateLineItem(ctx context.Context, dealID string, properties Properties) (string, error) {
	payload := objectInput{
		Properties: properties,
		Associations: []association{{
			To:    object{ID: dealID},
			Types: []associationType{{AssociationCategory: associationCategory, AssociationTypeID: AssociationLineItemToDeal}},
		}},
	}

	var created object
	if err := c.remote.Invoke(ctx, http.MethodPost, pathLineItems, payload, &created); err != nil {
		return constant.Empty, fmt.Errorf("failed to create hubspot line item: %w", err)
	}

	return created.ID, nil
}
