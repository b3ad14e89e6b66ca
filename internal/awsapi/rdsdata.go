package awsapi

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"

	"rdsq/internal/domain"
)

var _ domain.StatementExecutor = (*DataClient)(nil)

// ExecuteStatementAPIClient is the slice of the Data API client used by DataClient.
type ExecuteStatementAPIClient interface {
	ExecuteStatement(ctx context.Context, params *rdsdata.ExecuteStatementInput, optFns ...func(*rdsdata.Options)) (*rdsdata.ExecuteStatementOutput, error)
}

// DataClient runs statements through the RDS Data API.
type DataClient struct {
	api    ExecuteStatementAPIClient
	logger *slog.Logger
}

// NewDataClient wraps an RDS Data API client.
func NewDataClient(api ExecuteStatementAPIClient, logger *slog.Logger) *DataClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataClient{api: api, logger: logger}
}

// ExecuteStatement runs req with result metadata included and decimals returned
// as strings. Failures come back as *domain.StatementError.
func (c *DataClient) ExecuteStatement(ctx context.Context, req domain.ExecuteRequest) (*domain.ResultSet, error) {
	input := &rdsdata.ExecuteStatementInput{
		ResourceArn:           aws.String(req.Identity.ResourceARN),
		SecretArn:             aws.String(req.Identity.SecretARN),
		Sql:                   aws.String(req.SQL),
		IncludeResultMetadata: true,
		ResultSetOptions: &types.ResultSetOptions{
			DecimalReturnType: types.DecimalReturnTypeString,
		},
	}
	if req.Database != "" {
		input.Database = aws.String(req.Database)
	}

	c.logger.Info("execute statement",
		"resource_arn", req.Identity.ResourceARN,
		"secret_arn", req.Identity.SecretARN,
		"database", req.Database)
	c.logger.Debug("statement text", "sql", req.SQL)

	out, err := c.api.ExecuteStatement(ctx, input)
	if err != nil {
		return nil, statementError(err)
	}

	rs := toResultSet(out)
	c.logger.Debug("statement executed",
		"columns", len(rs.Columns),
		"rows", len(rs.Rows),
		"updated", rs.UpdateCount)
	return rs, nil
}

func toResultSet(out *rdsdata.ExecuteStatementOutput) *domain.ResultSet {
	rs := &domain.ResultSet{
		NoMetadata:  out.ColumnMetadata == nil,
		UpdateCount: out.NumberOfRecordsUpdated,
		Columns:     make([]domain.Column, len(out.ColumnMetadata)),
		Rows:        make([][]domain.Field, len(out.Records)),
	}
	for i, m := range out.ColumnMetadata {
		rs.Columns[i] = domain.Column{
			Label:    aws.ToString(m.Label),
			Name:     aws.ToString(m.Name),
			TypeName: aws.ToString(m.TypeName),
		}
	}
	for i, rec := range out.Records {
		row := make([]domain.Field, len(rec))
		for j, f := range rec {
			row[j] = toField(f)
		}
		rs.Rows[i] = row
	}
	return rs
}

func toField(f types.Field) domain.Field {
	switch v := f.(type) {
	case *types.FieldMemberArrayValue:
		return domain.ArrayField(arrayValues(v.Value))
	case *types.FieldMemberBlobValue:
		return domain.BlobField(v.Value)
	case *types.FieldMemberBooleanValue:
		return domain.BoolField(v.Value)
	case *types.FieldMemberDoubleValue:
		return domain.DoubleField(v.Value)
	case *types.FieldMemberIsNull:
		return domain.NullField()
	case *types.FieldMemberLongValue:
		return domain.LongField(v.Value)
	case *types.FieldMemberStringValue:
		return domain.StringField(v.Value)
	case *types.UnknownUnionMember:
		return domain.Field{Kind: domain.FieldUnknown, Tag: v.Tag}
	default:
		return domain.Field{}
	}
}

func arrayValues(a types.ArrayValue) []interface{} {
	var out []interface{}
	switch v := a.(type) {
	case *types.ArrayValueMemberArrayValues:
		for _, nested := range v.Value {
			out = append(out, arrayValues(nested))
		}
	case *types.ArrayValueMemberBooleanValues:
		for _, b := range v.Value {
			out = append(out, b)
		}
	case *types.ArrayValueMemberDoubleValues:
		for _, d := range v.Value {
			out = append(out, d)
		}
	case *types.ArrayValueMemberLongValues:
		for _, l := range v.Value {
			out = append(out, l)
		}
	case *types.ArrayValueMemberStringValues:
		for _, s := range v.Value {
			out = append(out, s)
		}
	}
	if out == nil {
		out = []interface{}{}
	}
	return out
}
