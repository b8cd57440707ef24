package models

// DocumentName is the fixed set of documents a candidate can verify through
// the document locker.
type DocumentName string

const (
	DocAadhaarCard    DocumentName = "Aadhaar Card"
	DocPANCard        DocumentName = "PAN Card"
	DocDrivingLicence DocumentName = "Driving Licence"
)

func AllDocumentNames() []DocumentName {
	return []DocumentName{DocAadhaarCard, DocPANCard, DocDrivingLicence}
}

func (d DocumentName) Valid() bool {
	switch d {
	case DocAadhaarCard, DocPANCard, DocDrivingLicence:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocVerified     DocumentStatus = "Verified"
	DocPending      DocumentStatus = "Pending"
	DocNotSubmitted DocumentStatus = "Not Submitted"
)

// Document is one {name, status} entry in a candidate's document set.
type Document struct {
	Name   DocumentName   `json:"name"`
	Status DocumentStatus `json:"status"`
}

// UpsertDocument sets the status for the named document, inserting the entry
// if absent. At most one entry per name ever exists.
func UpsertDocument(docs []Document, name DocumentName, status DocumentStatus) []Document {
	for i := range docs {
		if docs[i].Name == name {
			docs[i].Status = status
			return docs
		}
	}
	return append(docs, Document{Name: name, Status: status})
}

// DocumentStatusIcon maps a document status to its dashboard icon name.
// Exhaustive over the status enumeration.
func DocumentStatusIcon(s DocumentStatus) string {
	switch s {
	case DocVerified:
		return "shield-check"
	case DocPending:
		return "shield-alert"
	case DocNotSubmitted:
		return "shield-off"
	default:
		return "shield-off"
	}
}
