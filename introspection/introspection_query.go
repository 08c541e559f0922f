package introspection

// IntrospectionQuery asks an engine for the enum part of its schema. It uses the
// FullType field names of https://github.com/graphql/graphiql so its result
// lines up with ComputeSchemaJSON.
const IntrospectionQuery = `
query EnumIntrospectionQuery {
	__schema {
		types {
			...EnumType
		}
	}
}
fragment EnumType on __Type {
	kind
	name
	description
	enumValues(includeDeprecated: true) {
		name
		description
		isDeprecated
		deprecationReason
	}
}`

// TypeQuery looks up a single type by name, like LookupType.
const TypeQuery = `
query TypeQuery($name: String!) {
	__type(name: $name) {
		kind
		name
		description
		enumValues(includeDeprecated: true) {
			name
			description
			isDeprecated
			deprecationReason
		}
	}
}`
