// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"github.com/joeblew999/plat-campaign/internal/config"
	"github.com/joeblew999/plat-campaign/internal/events"
	"github.com/joeblew999/plat-campaign/internal/model"
	"github.com/joeblew999/plat-campaign/pkg/queue"
	"github.com/joeblew999/plat-campaign/pkg/template"
)

type ServiceContext struct {
	Config   config.Config
	Renderer *template.Renderer
	Queue    *queue.Queue
	Events   *events.Recorder

	Campaigns    model.CampaignsModel
	Subscribers  model.SubscribersModel
	Suppressions model.SuppressionsModel
	Emails       model.EmailsModel
	EmailEvents  model.EmailEventsModel
}

func NewServiceContext(c config.Config, deps Dependencies) *ServiceContext {
	return &ServiceContext{
		Config:       c,
		Renderer:     deps.Renderer,
		Queue:        deps.Queue,
		Events:       deps.Events,
		Campaigns:    deps.Campaigns,
		Subscribers:  deps.Subscribers,
		Suppressions: deps.Suppressions,
		Emails:       deps.Emails,
		EmailEvents:  deps.EmailEvents,
	}
}

// Dependencies bundles constructor arguments so server wiring stays readable.
type Dependencies struct {
	Renderer     *template.Renderer
	Queue        *queue.Queue
	Events       *events.Recorder
	Campaigns    model.CampaignsModel
	Subscribers  model.SubscribersModel
	Suppressions model.SuppressionsModel
	Emails       model.EmailsModel
	EmailEvents  model.EmailEventsModel
}
