package types

// AssetRef identifies a binary stored through the media service. PublicID
// is set iff the asset was uploaded through it; both fields are empty when
// the owning row has no asset.
type AssetRef struct {
	PublicID  string `gorm:"column:public_id" json:"public_id"`
	SecureURL string `gorm:"column:secure_url" json:"secure_url"`
}
