package ticket

import (
	"fmt"
	"time"
)

// File records an attachment stored on disk for a ticket. fileName is
// the name the client uploaded; filePath is the storage-relative
// location of the randomized blob.
type File struct {
	id         uint
	ticketID   uint
	fileName   string
	filePath   string
	fileType   string
	fileSize   int64
	uploadedAt time.Time
}

func NewFile(ticketID uint, fileName, filePath, fileType string, fileSize int64) (*File, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if len(fileName) > 255 {
		return nil, fmt.Errorf("file name exceeds maximum length of 255 characters")
	}
	if len(filePath) == 0 {
		return nil, fmt.Errorf("file path is required")
	}
	if fileSize < 0 {
		return nil, fmt.Errorf("file size cannot be negative")
	}

	return &File{
		ticketID:   ticketID,
		fileName:   fileName,
		filePath:   filePath,
		fileType:   fileType,
		fileSize:   fileSize,
		uploadedAt: time.Now(),
	}, nil
}

func ReconstructFile(id, ticketID uint, fileName, filePath, fileType string, fileSize int64, uploadedAt time.Time) (*File, error) {
	if id == 0 {
		return nil, fmt.Errorf("file ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}

	return &File{
		id:         id,
		ticketID:   ticketID,
		fileName:   fileName,
		filePath:   filePath,
		fileType:   fileType,
		fileSize:   fileSize,
		uploadedAt: uploadedAt,
	}, nil
}

func (f *File) ID() uint {
	return f.id
}

func (f *File) TicketID() uint {
	return f.ticketID
}

func (f *File) FileName() string {
	return f.fileName
}

func (f *File) FilePath() string {
	return f.filePath
}

func (f *File) FileType() string {
	return f.fileType
}

func (f *File) FileSize() int64 {
	return f.fileSize
}

func (f *File) UploadedAt() time.Time {
	return f.uploadedAt
}

func (f *File) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("file ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("file ID cannot be zero")
	}
	f.id = id
	return nil
}
