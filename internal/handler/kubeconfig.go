package handler

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/derhornspieler/gke-kubeconfig/internal/metrics"
	"github.com/derhornspieler/gke-kubeconfig/internal/middleware"
	"github.com/derhornspieler/gke-kubeconfig/pkg/kubeconfig"
)

// RenderKubeconfig handles POST /api/v1/kubeconfig.
// The JSON body carries cluster_name, cluster_endpoint, and
// cluster_master_auth; a key absent from the body is treated as missing,
// while an empty string is accepted.
func (h *Handler) RenderKubeconfig(w http.ResponseWriter, r *http.Request) {
	var args kubeconfig.Args
	if err := decodeJSON(r, &args); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		return
	}

	h.render(w, r, args)
}

// RenderKubeconfigQuery handles GET /api/v1/kubeconfig.
// Query parameters mirror the JSON body; a parameter counts as present
// only when its key appears in the query string, so ?cluster_master_auth=
// is an empty-but-present value.
func (h *Handler) RenderKubeconfigQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var args kubeconfig.Args
	if q.Has("cluster_name") {
		v := q.Get("cluster_name")
		args.ClusterName = &v
	}
	if q.Has("cluster_endpoint") {
		v := q.Get("cluster_endpoint")
		args.ClusterEndpoint = &v
	}
	if q.Has("cluster_master_auth") {
		v := q.Get("cluster_master_auth")
		args.ClusterMasterAuth = &v
	}

	h.render(w, r, args)
}

// render generates the kubeconfig and writes it as a YAML download.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, args kubeconfig.Args) {
	ctx := r.Context()

	out, err := kubeconfig.Generate(args)
	if err != nil {
		var missingErr *kubeconfig.MissingArgsError
		if errors.As(err, &missingErr) {
			metrics.ValidationErrorsTotal.Inc()
			h.Logger.Warn("kubeconfig request rejected",
				zap.Strings("missing", missingErr.Missing),
				zap.String("request_id", middleware.GetRequestID(ctx)))
			writeError(w, http.StatusBadRequest, "MISSING_ARGS", err.Error())
			return
		}

		h.Logger.Error("failed to render kubeconfig", zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(ctx)))
		writeError(w, http.StatusInternalServerError, "RENDER_ERROR", "failed to render kubeconfig")
		return
	}

	clusterName := *args.ClusterName

	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-kubeconfig.yaml", clusterName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))

	metrics.KubeconfigsGeneratedTotal.Inc()

	h.Logger.Info("kubeconfig generated",
		zap.String("cluster", clusterName),
		zap.String("request_id", middleware.GetRequestID(ctx)),
	)
}
