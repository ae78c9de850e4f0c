package domain

// Node is a graph vertex. Object is the STIX object that defined the node;
// nodes restored from an exported graph carry only id, type and name.
type Node struct {
	ID     string
	Object Object
}

// Type returns the defining object's type
func (n Node) Type() string {
	return n.Object.Type()
}

// Name returns the defining object's name
func (n Node) Name() string {
	return n.Object.GetString(FieldName)
}
