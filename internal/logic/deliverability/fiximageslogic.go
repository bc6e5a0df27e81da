// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package deliverability

import (
	"context"

	"github.com/joeblew999/plat-campaign/internal/svc"
	"github.com/joeblew999/plat-campaign/internal/types"
	"github.com/joeblew999/plat-campaign/pkg/deliverability"

	"github.com/zeromicro/go-zero/core/logx"
)

type FixImagesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewFixImagesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FixImagesLogic {
	return &FixImagesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *FixImagesLogic) FixImages(req *types.FixImagesRequest) (resp *types.FixImagesResponse, err error) {
	fixed := deliverability.FixImages(req.Content)

	return &types.FixImagesResponse{
		Content: fixed,
		Changed: fixed != req.Content,
	}, nil
}
