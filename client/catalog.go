package client

import (
	"fmt"

	"api/internal/models"
)

// Catalog is a typed view over one reference-data kind. Read endpoints are
// available to any authenticated user; writes require an admin token.
type Catalog[T any, B any] struct {
	client *Client
	kind   string
}

func (v Catalog[T, B]) List() ([]T, error) {
	return get[[]T](v.client, "/api/"+v.kind, nil)
}

func (v Catalog[T, B]) Create(body B) (T, error) {
	return post[T](v.client, "/api/admin/"+v.kind, body)
}

func (v Catalog[T, B]) Update(id uint, body B) (T, error) {
	return post[T](v.client, fmt.Sprintf("/api/admin/%s/%d", v.kind, id), body)
}

func (v Catalog[T, B]) Delete(id uint) error {
	return del(v.client, fmt.Sprintf("/api/admin/%s/%d", v.kind, id))
}

// Reorder submits the full new display order and returns the list as the
// server now sees it.
func (v Catalog[T, B]) Reorder(orderedIDs []uint) ([]T, error) {
	return patch[[]T](v.client, "/api/admin/"+v.kind+"/reorder", models.ReorderBody{
		OrderedIDs: orderedIDs,
	})
}

// MoveBefore reorders by dragging one entry in front of another. currentIDs
// must be the complete list in its current display order.
func (v Catalog[T, B]) MoveBefore(currentIDs []uint, moving, target uint) ([]T, error) {
	return v.Reorder(MoveBefore(currentIDs, moving, target))
}

func (c *Client) Doctors() Catalog[models.Doctor, models.DoctorBody] {
	return Catalog[models.Doctor, models.DoctorBody]{client: c, kind: "doctors"}
}

func (c *Client) Services() Catalog[models.Service, models.ServiceBody] {
	return Catalog[models.Service, models.ServiceBody]{client: c, kind: "services"}
}

func (c *Client) Aspects() Catalog[models.Aspect, models.AspectBody] {
	return Catalog[models.Aspect, models.AspectBody]{client: c, kind: "aspects"}
}

func (c *Client) Sources() Catalog[models.Source, models.SourceBody] {
	return Catalog[models.Source, models.SourceBody]{client: c, kind: "sources"}
}

func (c *Client) Rewards() Catalog[models.Reward, models.RewardBody] {
	return Catalog[models.Reward, models.RewardBody]{client: c, kind: "rewards"}
}

func (c *Client) Platforms() Catalog[models.Platform, models.PlatformBody] {
	return Catalog[models.Platform, models.PlatformBody]{client: c, kind: "platforms"}
}

func (c *Client) Reasons() Catalog[models.Reason, models.ReasonBody] {
	return Catalog[models.Reason, models.ReasonBody]{client: c, kind: "reasons"}
}

func (c *Client) News() Catalog[models.News, models.NewsBody] {
	return Catalog[models.News, models.NewsBody]{client: c, kind: "news"}
}
