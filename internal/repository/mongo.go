package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"permission-engine/internal/config"
	"permission-engine/internal/repository/model"
	"permission-engine/internal/repository/registrytypes"
)

const (
	databaseName = "permission-engine"

	serverCollectionName    = "servers"
	channelCollectionName   = "channels"
	roleCollectionName      = "roles"
	memberCollectionName    = "members"
	overwriteCollectionName = "overwrites"
)

type mongoRepository struct {
	database *mongo.Database

	serverCollection    *mongo.Collection
	channelCollection   *mongo.Collection
	roleCollection      *mongo.Collection
	memberCollection    *mongo.Collection
	overwriteCollection *mongo.Collection
}

var _ Repository = (*mongoRepository)(nil)

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.MongoDBConfig) (Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetRegistry(createCodecRegistry()))
	if err != nil {
		return nil, err
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorw("failed to disconnect from mongo", "error", err)
		}
	}()

	database := client.Database(databaseName)
	return &mongoRepository{
		database:            database,
		serverCollection:    database.Collection(serverCollectionName),
		channelCollection:   database.Collection(channelCollectionName),
		roleCollection:      database.Collection(roleCollectionName),
		memberCollection:    database.Collection(memberCollectionName),
		overwriteCollection: database.Collection(overwriteCollectionName),
	}, nil
}

func (m *mongoRepository) GetServers(ctx context.Context) ([]*model.Server, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.serverCollection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var result []model.Server
	err = cursor.All(ctx, &result)

	return asPointerSlice(result), err
}

func (m *mongoRepository) GetServer(ctx context.Context, serverId uuid.UUID) (*model.Server, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result model.Server
	if err := m.serverCollection.FindOne(ctx, bson.M{"_id": serverId}).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *mongoRepository) GetRoles(ctx context.Context, serverId uuid.UUID) ([]*model.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.roleCollection.Find(ctx, bson.M{"serverId": serverId})
	if err != nil {
		return nil, err
	}

	var result []model.Role
	err = cursor.All(ctx, &result)

	return asPointerSlice(result), err
}

func (m *mongoRepository) GetRole(ctx context.Context, serverId uuid.UUID, roleId string) (*model.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result model.Role
	if err := m.roleCollection.FindOne(ctx, roleFilter(serverId, roleId)).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *mongoRepository) DoesRoleExist(ctx context.Context, serverId uuid.UUID, roleId string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := m.roleCollection.CountDocuments(ctx, roleFilter(serverId, roleId))
	return count > 0, err
}

func (m *mongoRepository) CreateRole(ctx context.Context, role *model.Role) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := m.DoesRoleExist(ctx, role.ServerId, role.Id)
	if err != nil {
		return err
	}
	if exists {
		return ErrRoleAlreadyExists
	}

	_, err = m.roleCollection.InsertOne(ctx, role)
	return err
}

func (m *mongoRepository) UpdateRole(ctx context.Context, newRole *model.Role) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result := m.roleCollection.FindOneAndReplace(ctx, roleFilter(newRole.ServerId, newRole.Id), newRole)
	return result.Err()
}

func (m *mongoRepository) DeleteRole(ctx context.Context, serverId uuid.UUID, roleId string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.roleCollection.DeleteOne(ctx, roleFilter(serverId, roleId))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (m *mongoRepository) GetChannels(ctx context.Context, serverId uuid.UUID) ([]*model.Channel, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.channelCollection.Find(ctx, bson.M{"serverId": serverId})
	if err != nil {
		return nil, err
	}

	var result []model.Channel
	err = cursor.All(ctx, &result)

	return asPointerSlice(result), err
}

func (m *mongoRepository) GetChannel(ctx context.Context, channelId uuid.UUID) (*model.Channel, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result model.Channel
	if err := m.channelCollection.FindOne(ctx, bson.M{"_id": channelId}).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *mongoRepository) CreateChannel(ctx context.Context, channel *model.Channel) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.channelCollection.InsertOne(ctx, channel)
	return err
}

func (m *mongoRepository) UpdateChannel(ctx context.Context, newChannel *model.Channel) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result := m.channelCollection.FindOneAndReplace(ctx, bson.M{"_id": newChannel.Id}, newChannel)
	return result.Err()
}

func (m *mongoRepository) DeleteChannel(ctx context.Context, channelId uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.channelCollection.DeleteOne(ctx, bson.M{"_id": channelId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	// Overwrites are scoped to their channel and die with it.
	_, err = m.overwriteCollection.DeleteMany(ctx, bson.M{"channelId": channelId})
	return err
}

func (m *mongoRepository) GetMembers(ctx context.Context, serverId uuid.UUID) ([]*model.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.memberCollection.Find(ctx, bson.M{"serverId": serverId})
	if err != nil {
		return nil, err
	}

	var result []model.Member
	err = cursor.All(ctx, &result)

	return asPointerSlice(result), err
}

func (m *mongoRepository) GetMemberRoleIds(ctx context.Context, serverId, userId uuid.UUID) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result model.Member
	err := m.memberCollection.FindOne(ctx, memberFilter(serverId, userId)).Decode(&result)
	if err != nil {
		// Unknown members are materialized with the default role.
		if err == mongo.ErrNoDocuments {
			member := model.Member{UserId: userId, ServerId: serverId, RoleIds: []string{model.DefaultRoleId}}
			if _, err := m.memberCollection.InsertOne(ctx, member); err != nil {
				return nil, err
			}
			return member.RoleIds, nil
		}
		return nil, err
	}

	return result.RoleIds, nil
}

func (m *mongoRepository) AddRoleToMember(ctx context.Context, serverId, userId uuid.UUID, roleId string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.memberCollection.UpdateOne(ctx, memberFilter(serverId, userId),
		bson.M{"$addToSet": bson.M{"roleIds": roleId}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		member := model.Member{UserId: userId, ServerId: serverId, RoleIds: []string{model.DefaultRoleId, roleId}}
		_, err := m.memberCollection.InsertOne(ctx, member)
		return err
	}

	if result.ModifiedCount == 0 {
		return ErrAlreadyHasRole
	}

	return nil
}

func (m *mongoRepository) RemoveRoleFromMember(ctx context.Context, serverId, userId uuid.UUID, roleId string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.memberCollection.UpdateOne(ctx, memberFilter(serverId, userId),
		bson.M{"$pull": bson.M{"roleIds": roleId}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	if result.ModifiedCount == 0 {
		return ErrDoesNotHaveRole
	}

	return nil
}

func (m *mongoRepository) GetOverwrites(ctx context.Context, serverId uuid.UUID) ([]*model.Overwrite, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.overwriteCollection.Find(ctx, bson.M{"serverId": serverId})
	if err != nil {
		return nil, err
	}

	var result []model.Overwrite
	err = cursor.All(ctx, &result)

	return asPointerSlice(result), err
}

func (m *mongoRepository) SetOverwrite(ctx context.Context, overwrite *model.Overwrite) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter, err := overwriteFilter(overwrite)
	if err != nil {
		return err
	}

	_, err = m.overwriteCollection.ReplaceOne(ctx, filter, overwrite, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoRepository) DeleteRoleOverwrite(ctx context.Context, channelId uuid.UUID, roleId string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.overwriteCollection.DeleteOne(ctx,
		bson.M{"channelId": channelId, "target": model.TargetRole, "roleId": roleId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (m *mongoRepository) DeleteMemberOverwrite(ctx context.Context, channelId, userId uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.overwriteCollection.DeleteOne(ctx,
		bson.M{"channelId": channelId, "target": model.TargetMember, "userId": userId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func roleFilter(serverId uuid.UUID, roleId string) bson.M {
	return bson.M{"serverId": serverId, "roleId": roleId}
}

func memberFilter(serverId, userId uuid.UUID) bson.M {
	return bson.M{"serverId": serverId, "userId": userId}
}

func overwriteFilter(overwrite *model.Overwrite) (bson.M, error) {
	switch overwrite.Target {
	case model.TargetRole:
		return bson.M{"channelId": overwrite.ChannelId, "target": model.TargetRole, "roleId": overwrite.RoleId}, nil
	case model.TargetMember:
		return bson.M{"channelId": overwrite.ChannelId, "target": model.TargetMember, "userId": overwrite.UserId}, nil
	default:
		return nil, fmt.Errorf("unknown overwrite target %q", overwrite.Target)
	}
}

func asPointerSlice[T any](values []T) []*T {
	slice := make([]*T, len(values))
	for i := range values {
		slice[i] = &values[i]
	}
	return slice
}

func createCodecRegistry() *bsoncodec.Registry {
	return bson.NewRegistryBuilder().
		RegisterTypeEncoder(registrytypes.UUIDType, bsoncodec.ValueEncoderFunc(registrytypes.UuidEncodeValue)).
		RegisterTypeDecoder(registrytypes.UUIDType, bsoncodec.ValueDecoderFunc(registrytypes.UuidDecodeValue)).
		Build()
}
