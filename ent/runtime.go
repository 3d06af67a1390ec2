// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fiber-ent-x-moderation/ent/blockexecution"
	"fiber-ent-x-moderation/ent/identity"
	"fiber-ent-x-moderation/ent/schema"
	"fiber-ent-x-moderation/ent/socialaccount"
	"fiber-ent-x-moderation/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	blockexecutionFields := schema.BlockExecution{}.Fields()
	_ = blockexecutionFields
	// blockexecutionDescBlockID is the schema descriptor for block_id field.
	blockexecutionDescBlockID := blockexecutionFields[1].Descriptor()
	// blockexecution.BlockIDValidator is a validator for the "block_id" field. It is called by the builders before save.
	blockexecution.BlockIDValidator = blockexecutionDescBlockID.Validators[0].(func(string) error)
	// blockexecutionDescBlockName is the schema descriptor for block_name field.
	blockexecutionDescBlockName := blockexecutionFields[2].Descriptor()
	// blockexecution.BlockNameValidator is a validator for the "block_name" field. It is called by the builders before save.
	blockexecution.BlockNameValidator = blockexecutionDescBlockName.Validators[0].(func(string) error)
	// blockexecutionDescCreatedAt is the schema descriptor for created_at field.
	blockexecutionDescCreatedAt := blockexecutionFields[10].Descriptor()
	// blockexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	blockexecution.DefaultCreatedAt = blockexecutionDescCreatedAt.Default.(func() time.Time)
	// blockexecutionDescID is the schema descriptor for id field.
	blockexecutionDescID := blockexecutionFields[0].Descriptor()
	// blockexecution.DefaultID holds the default value on creation for the id field.
	blockexecution.DefaultID = blockexecutionDescID.Default.(func() uuid.UUID)
	identityFields := schema.Identity{}.Fields()
	_ = identityFields
	// identityDescIdentifier is the schema descriptor for identifier field.
	identityDescIdentifier := identityFields[2].Descriptor()
	// identity.IdentifierValidator is a validator for the "identifier" field. It is called by the builders before save.
	identity.IdentifierValidator = func() func(string) error {
		validators := identityDescIdentifier.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(identifier string) error {
			for _, fn := range fns {
				if err := fn(identifier); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// identityDescSecretHash is the schema descriptor for secret_hash field.
	identityDescSecretHash := identityFields[3].Descriptor()
	// identity.SecretHashValidator is a validator for the "secret_hash" field. It is called by the builders before save.
	identity.SecretHashValidator = identityDescSecretHash.Validators[0].(func(string) error)
	// identityDescCreatedAt is the schema descriptor for created_at field.
	identityDescCreatedAt := identityFields[4].Descriptor()
	// identity.DefaultCreatedAt holds the default value on creation for the created_at field.
	identity.DefaultCreatedAt = identityDescCreatedAt.Default.(func() time.Time)
	// identityDescID is the schema descriptor for id field.
	identityDescID := identityFields[0].Descriptor()
	// identity.DefaultID holds the default value on creation for the id field.
	identity.DefaultID = identityDescID.Default.(func() uuid.UUID)
	socialaccountFields := schema.SocialAccount{}.Fields()
	_ = socialaccountFields
	// socialaccountDescHandle is the schema descriptor for handle field.
	socialaccountDescHandle := socialaccountFields[2].Descriptor()
	// socialaccount.HandleValidator is a validator for the "handle" field. It is called by the builders before save.
	socialaccount.HandleValidator = socialaccountDescHandle.Validators[0].(func(string) error)
	// socialaccountDescProviderUserID is the schema descriptor for provider_user_id field.
	socialaccountDescProviderUserID := socialaccountFields[3].Descriptor()
	// socialaccount.ProviderUserIDValidator is a validator for the "provider_user_id" field. It is called by the builders before save.
	socialaccount.ProviderUserIDValidator = socialaccountDescProviderUserID.Validators[0].(func(string) error)
	// socialaccountDescAccessTokenSealed is the schema descriptor for access_token_sealed field.
	socialaccountDescAccessTokenSealed := socialaccountFields[4].Descriptor()
	// socialaccount.AccessTokenSealedValidator is a validator for the "access_token_sealed" field. It is called by the builders before save.
	socialaccount.AccessTokenSealedValidator = socialaccountDescAccessTokenSealed.Validators[0].(func(string) error)
	// socialaccountDescIsActive is the schema descriptor for is_active field.
	socialaccountDescIsActive := socialaccountFields[7].Descriptor()
	// socialaccount.DefaultIsActive holds the default value on creation for the is_active field.
	socialaccount.DefaultIsActive = socialaccountDescIsActive.Default.(bool)
	// socialaccountDescCreatedAt is the schema descriptor for created_at field.
	socialaccountDescCreatedAt := socialaccountFields[9].Descriptor()
	// socialaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	socialaccount.DefaultCreatedAt = socialaccountDescCreatedAt.Default.(func() time.Time)
	// socialaccountDescUpdatedAt is the schema descriptor for updated_at field.
	socialaccountDescUpdatedAt := socialaccountFields[10].Descriptor()
	// socialaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	socialaccount.DefaultUpdatedAt = socialaccountDescUpdatedAt.Default.(func() time.Time)
	// socialaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	socialaccount.UpdateDefaultUpdatedAt = socialaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// socialaccountDescID is the schema descriptor for id field.
	socialaccountDescID := socialaccountFields[0].Descriptor()
	// socialaccount.DefaultID holds the default value on creation for the id field.
	socialaccount.DefaultID = socialaccountDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[2].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
