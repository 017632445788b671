package ingest

import (
	"testing"

	"github.com/okra-platform/rustgen/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

func scalarField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     typ.Enum(),
	}
}

func refField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, number, typ)
	f.TypeName = proto.String(typeName)
	return f
}

func userFile() *descriptorpb.FileDescriptorProto {
	tags := scalarField("tags", 4, descriptorpb.FieldDescriptorProto_TYPE_STRING)
	tags.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()

	labels := refField("labels", 5, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".users.v1.User.LabelsEntry")
	labels.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()

	nickname := scalarField("nickname", 6, descriptorpb.FieldDescriptorProto_TYPE_STRING)
	nickname.Proto3Optional = proto.Bool(true)
	nickname.OneofIndex = proto.Int32(0)

	displayName := scalarField("display_name", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING)
	displayName.JsonName = proto.String("displayName")

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("users/v1/users.proto"),
		Package: proto.String("users.v1"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("User"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("id", 1, descriptorpb.FieldDescriptorProto_TYPE_INT64),
					displayName,
					refField("created", 3, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".google.protobuf.Timestamp"),
					tags,
					labels,
					nickname,
					refField("role", 7, descriptorpb.FieldDescriptorProto_TYPE_ENUM, ".users.v1.User.Role"),
					refField("address", 8, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".users.v1.User.Address"),
				},
				NestedType: []*descriptorpb.DescriptorProto{
					{
						Name: proto.String("LabelsEntry"),
						Field: []*descriptorpb.FieldDescriptorProto{
							scalarField("key", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
							scalarField("value", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
						},
						Options: &descriptorpb.MessageOptions{MapEntry: proto.Bool(true)},
					},
					{
						Name:  proto.String("Address"),
						Field: []*descriptorpb.FieldDescriptorProto{scalarField("city", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING)},
					},
				},
				EnumType: []*descriptorpb.EnumDescriptorProto{
					{
						Name: proto.String("Role"),
						Value: []*descriptorpb.EnumValueDescriptorProto{
							{Name: proto.String("ROLE_UNSPECIFIED"), Number: proto.Int32(0)},
							{Name: proto.String("ROLE_ADMIN"), Number: proto.Int32(1)},
						},
					},
				},
				OneofDecl: []*descriptorpb.OneofDescriptorProto{{Name: proto.String("_nickname")}},
			},
			{
				Name:  proto.String("GetUserRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{scalarField("id", 1, descriptorpb.FieldDescriptorProto_TYPE_INT64)},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("UserService"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{
						Name:       proto.String("GetUser"),
						InputType:  proto.String(".users.v1.GetUserRequest"),
						OutputType: proto.String(".users.v1.User"),
					},
					{
						Name:       proto.String("Ping"),
						InputType:  proto.String(".google.protobuf.Empty"),
						OutputType: proto.String(".google.protobuf.Empty"),
					},
				},
			},
		},
		SourceCodeInfo: &descriptorpb.SourceCodeInfo{
			Location: []*descriptorpb.SourceCodeInfo_Location{
				{Path: []int32{4, 0}, LeadingComments: proto.String(" A registered account.\n")},
				{Path: []int32{4, 0, 2, 0}, LeadingComments: proto.String(" Stable identifier.\n")},
				{Path: []int32{6, 0, 2, 1}, LeadingComments: proto.String(" Health check.\n")},
			},
		},
	}
}

func encodeSet(t *testing.T, files ...*descriptorpb.FileDescriptorProto) []byte {
	t.Helper()
	data, err := proto.Marshal(&descriptorpb.FileDescriptorSet{File: files})
	require.NoError(t, err)
	return data
}

func TestLoadDescriptorSet(t *testing.T) {
	// Test plan:
	// - Map messages, nested messages and nested enums
	// - Map labels: repeated, proto3 optional, message presence, maps
	// - Map well-known types and google.protobuf.Empty
	// - Attach leading comments as docs

	wkt := &descriptorpb.FileDescriptorProto{
		Name:        proto.String("google/protobuf/timestamp.proto"),
		Package:     proto.String("google.protobuf"),
		MessageType: []*descriptorpb.DescriptorProto{{Name: proto.String("Timestamp")}},
	}

	s, err := LoadDescriptorSet(encodeSet(t, wkt, userFile()))
	require.NoError(t, err)

	assert.Equal(t, "users.v1", s.Meta.Namespace)

	// Test: Nested messages come before their parent; map entries are dropped
	names := make([]string, len(s.Types))
	for i, typ := range s.Types {
		names[i] = typ.Name
	}
	assert.Equal(t, []string{"UserAddress", "User", "GetUserRequest"}, names)

	user, ok := s.FindType("User")
	require.True(t, ok)
	assert.Equal(t, "A registered account.", user.Doc)
	assert.Equal(t, []schema.Field{
		{Name: "id", Type: "Int64", Required: true, Doc: "Stable identifier."},
		{Name: "displayName", Type: "String", Required: true},
		{Name: "created", Type: "Time"},
		{Name: "tags", Type: "[String]", Required: true},
		{Name: "labels", Type: "Any", Required: true},
		{Name: "nickname", Type: "String"},
		{Name: "role", Type: "UserRole", Required: true},
		{Name: "address", Type: "UserAddress"},
	}, user.Fields)

	require.Len(t, s.Enums, 1)
	assert.Equal(t, "UserRole", s.Enums[0].Name)
	assert.Equal(t, []schema.EnumValue{{Name: "ROLE_UNSPECIFIED"}, {Name: "ROLE_ADMIN"}}, s.Enums[0].Values)

	require.Len(t, s.Services, 1)
	svc := s.Services[0]
	assert.Equal(t, "UserService", svc.Name)
	assert.Equal(t, []schema.Method{
		{Name: "GetUser", InputType: "GetUserRequest", OutputType: "User"},
		{Name: "Ping", Doc: "Health check."},
	}, svc.Methods)

	// Test: The mapped schema is internally consistent
	assert.NoError(t, s.Validate())
}

func TestLoadDescriptorSet_Proto2(t *testing.T) {
	required := scalarField("id", 1, descriptorpb.FieldDescriptorProto_TYPE_INT32)
	required.Label = descriptorpb.FieldDescriptorProto_LABEL_REQUIRED.Enum()

	file := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("legacy.proto"),
		Package: proto.String("legacy"),
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("Item"),
			Field: []*descriptorpb.FieldDescriptorProto{
				required,
				scalarField("weight", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
			},
		}},
	}

	s, err := LoadDescriptorSet(encodeSet(t, file))
	require.NoError(t, err)
	require.Len(t, s.Types, 1)
	assert.Equal(t, []schema.Field{
		{Name: "id", Type: "Int", Required: true},
		{Name: "weight", Type: "Float64"},
	}, s.Types[0].Fields)
}

func TestLoadDescriptorSet_CrossPackageReferences(t *testing.T) {
	common := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("common/v1/money.proto"),
		Package: proto.String("common.v1"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("Money"),
			Field: []*descriptorpb.FieldDescriptorProto{
				scalarField("units", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("nanos", 2, descriptorpb.FieldDescriptorProto_TYPE_FIXED32),
			},
			EnumType: []*descriptorpb.EnumDescriptorProto{{
				Name:  proto.String("Currency"),
				Value: []*descriptorpb.EnumValueDescriptorProto{{Name: proto.String("EUR"), Number: proto.Int32(0)}},
			}},
		}},
	}
	orders := &descriptorpb.FileDescriptorProto{
		Name:       proto.String("orders/v1/orders.proto"),
		Package:    proto.String("orders.v1"),
		Syntax:     proto.String("proto3"),
		Dependency: []string{"common/v1/money.proto"},
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("Order"),
			Field: []*descriptorpb.FieldDescriptorProto{
				refField("total", 1, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".common.v1.Money"),
				refField("currency", 2, descriptorpb.FieldDescriptorProto_TYPE_ENUM, ".common.v1.Money.Currency"),
				scalarField("count", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				refField("ref", 4, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".google.protobuf.UInt64Value"),
			},
		}},
	}

	s, err := LoadDescriptorSet(encodeSet(t, common, orders))
	require.NoError(t, err)

	money, ok := s.FindType("Money")
	require.True(t, ok)
	assert.Equal(t, []schema.Field{
		{Name: "units", Type: "UInt64", Required: true},
		{Name: "nanos", Type: "UInt32", Required: true},
	}, money.Fields)

	order, ok := s.FindType("Order")
	require.True(t, ok)
	assert.Equal(t, []schema.Field{
		{Name: "total", Type: "Money"},
		{Name: "currency", Type: "MoneyCurrency", Required: true},
		{Name: "count", Type: "UInt32", Required: true},
		{Name: "ref", Type: "UInt64"},
	}, order.Fields)

	assert.NoError(t, s.Validate())
}

func TestLoadDescriptorSet_Invalid(t *testing.T) {
	_, err := LoadDescriptorSet([]byte("not a descriptor set"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode descriptor set")
}

func TestLoadDescriptorSet_ThroughRegistry(t *testing.T) {
	s, err := DefaultRegistry.Load("api.binpb", encodeSet(t, userFile()))
	require.NoError(t, err)
	assert.Len(t, s.Services, 1)
}
