package chat

type ApplySignedUrlReq struct {
	Prefix *string `form:"prefix" json:"prefix,omitempty" query:"prefix"`
	Suffix *string `form:"suffix" json:"suffix,omitempty" query:"suffix"`
}

func (x *ApplySignedUrlReq) GetPrefix() string {
	if x != nil && x.Prefix != nil {
		return *x.Prefix
	}
	return ""
}

func (x *ApplySignedUrlReq) GetSuffix() string {
	if x != nil && x.Suffix != nil {
		return *x.Suffix
	}
	return ""
}

type ApplySignedUrlResp struct {
	Url string `json:"url"`
	Key string `json:"key"`
}
