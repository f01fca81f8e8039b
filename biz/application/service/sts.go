package service

import (
	"context"
	"fmt"
	"school-chat/biz/adaptor"
	"school-chat/biz/application/dto/school/chat"
	"school-chat/biz/infrastructure/config"
	"school-chat/biz/infrastructure/consts"
	"school-chat/biz/infrastructure/repository/token"
	"school-chat/biz/infrastructure/util/log"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/google/wire"
)

type IStsService interface {
	ApplySignedUrl(ctx context.Context, req *chat.ApplySignedUrlReq) (*chat.ApplySignedUrlResp, error)
}

type StsService struct {
	Config      *config.Config
	TokenMapper token.Mapper
}

var StsServiceSet = wire.NewSet(
	wire.Struct(new(StsService), "*"),
	wire.Bind(new(IStsService), new(*StsService)),
)

// ApplySignedUrl 申请对象存储的加签上传地址，用于聊天图片等附件
func (s *StsService) ApplySignedUrl(ctx context.Context, req *chat.ApplySignedUrlReq) (*chat.ApplySignedUrlResp, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	oss := s.Config.Oss
	sess, err := session.NewSession(&aws.Config{
		Endpoint:         aws.String(oss.Endpoint),
		Region:           aws.String(oss.Region),
		Credentials:      credentials.NewStaticCredentials(oss.AccessKeyId, oss.AccessKeySecret, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		log.CtxError(ctx, "创建对象存储会话失败: %v", err)
		return nil, consts.ErrApplySignedUrl
	}

	key := fmt.Sprintf("chat_%s/%s/%s%s%s",
		s.Config.State, meta.GetUserId(), req.GetPrefix(), uuid.New().String(), req.GetSuffix())

	putReq, _ := s3.New(sess).PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(oss.Bucket),
		Key:    aws.String(key),
	})
	url, err := putReq.Presign(consts.SignedUrlExpireMinutes * time.Minute)
	if err != nil {
		log.CtxError(ctx, "生成加签地址失败: %v", err)
		return nil, consts.ErrApplySignedUrl
	}

	return &chat.ApplySignedUrlResp{
		Url: url,
		Key: key,
	}, nil
}
