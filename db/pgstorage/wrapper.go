package pgstorage

import (
	"context"
	"strings"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/cketh-starter/ckusdc-depositor/utils"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// execQuerierWrapper logs every statement with its duration and trace id
type execQuerierWrapper struct {
	execQuerier
}

func (w *execQuerierWrapper) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	logger := log.WithFields(utils.TraceID, utils.TraceIDFromContext(ctx))
	startTime := time.Now()
	tag, err := w.execQuerier.Exec(ctx, sql, arguments...)
	logger.Debugf("DB exec sql[%v] arguments[%v] rowsAffected[%v] err[%v] processTime[%v]",
		removeNewLine(sql), arguments, tag.RowsAffected(), err, time.Since(startTime).String())
	return tag, err
}

func (w *execQuerierWrapper) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	logger := log.WithFields(utils.TraceID, utils.TraceIDFromContext(ctx))
	startTime := time.Now()
	rows, err := w.execQuerier.Query(ctx, sql, args...)
	logger.Debugf("DB query sql[%v] arguments[%v] err[%v] processTime[%v]", removeNewLine(sql), args, err, time.Since(startTime).String())
	return rows, err
}

func (w *execQuerierWrapper) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	log.WithFields(utils.TraceID, utils.TraceIDFromContext(ctx)).
		Debugf("DB query row sql[%v] arguments[%v]", removeNewLine(sql), args)
	return w.execQuerier.QueryRow(ctx, sql, args...)
}

func removeNewLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
