package mysql

import (
	"errors"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const errDuplicateEntry = 1062

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqlDriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errDuplicateEntry
}

// User facing messages, kept in the API's language.
const (
	msgThreadNotFound  = "thread tidak ditemukan"
	msgCommentNotFound = "komentar tidak ditemukan"
	msgReplyNotFound   = "balasan tidak ditemukan"
	msgForbidden       = "anda tidak berhak mengakses resource ini"
	msgAlreadyLiked    = "user sudah menyukai komentar ini"
	msgLikeNotFound    = "like tidak ditemukan"
)
